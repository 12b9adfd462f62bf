package useragent

// Operating systems reported by Info.OS.
const (
	OSWindows       = "windows"
	OSWindowsPhone  = "windows phone"
	OSWindowsMobile = "windows mobile"
	OSMacOS         = "macos"
	OSiOS           = "ios"
	OSAndroid       = "android"
	OSLinux         = "linux"
	OSChromeOS      = "chromeos"
	OSHarmonyOS     = "harmonyos"
	OSFireOS        = "fireos"
	OSUnknown       = "unknown"
)

// platforms is ordered: the Windows mobile flavours must be tried before
// desktop Windows, iOS before macOS since iOS agents say "like Mac OS X".
var platforms = []rule{
	{OSWindowsPhone, []string{"windows phone"}},
	{OSWindowsMobile, []string{"windows mobile", "windows ce", "iemobile"}},
	{OSWindows, []string{"windows"}},
	{OSiOS, []string{"iphone", "ipad", "ipod"}},
	{OSMacOS, []string{"macintosh", "mac os x"}},
	{OSAndroid, []string{"android"}},
	{OSHarmonyOS, []string{"harmonyos"}},
	{OSFireOS, []string{"kindle", "silk"}},
	{OSChromeOS, []string{"cros", "chromeos", "chrome os"}},
	{OSLinux, []string{"linux", "ubuntu", "debian", "fedora", "mint", "x11"}},
}

var osDisplayNames = map[string]string{
	OSWindowsPhone:  "Windows Phone",
	OSWindowsMobile: "Windows Mobile",
	OSMacOS:         "macOS",
	OSiOS:           "iOS",
	OSChromeOS:      "ChromeOS",
	OSHarmonyOS:     "HarmonyOS",
	OSFireOS:        "Fire OS",
}

func platform(lowerUA string) string {
	if os := firstMatch(lowerUA, platforms); os != "" {
		return os
	}
	return OSUnknown
}
