package useragent

import "strings"

// Model names reported by Info.Model.
const (
	ModelIPhone  = "iphone"
	ModelIPod    = "ipod"
	ModelIPad    = "ipad"
	ModelSamsung = "samsung"
	ModelHuawei  = "huawei"
	ModelXiaomi  = "xiaomi"
	ModelOppo    = "oppo"
	ModelVivo    = "vivo"
	ModelKindle  = "kindle"
	ModelSurface = "surface"
	ModelAndroid = "android"
	ModelUnknown = "unknown"
)

var phoneModels = []rule{
	{ModelIPhone, []string{"iphone"}},
	{ModelIPod, []string{"ipod"}},
	{ModelSamsung, []string{"samsung", "sm-g", "sm-a", "sm-n", "samsungbrowser"}},
	{ModelHuawei, []string{"huawei", "hwa-", "honor", "h60-", "h30-"}},
	{ModelXiaomi, []string{"xiaomi", "mi ", "redmi", "miui"}},
	{ModelOppo, []string{"oppo", "cph1", "cph2", "f1f"}},
	{ModelVivo, []string{"vivo", "viv-", "v1730", "v1731"}},
	{ModelAndroid, []string{"android"}},
}

// tabletModels has no Surface entry, Windows tablets are recognised by
// isWindowsTouch.
var tabletModels = []rule{
	{ModelIPad, []string{"ipad"}},
	{ModelSamsung, []string{"samsung", "sm-t", "gt-p", "sm-p"}},
	{ModelHuawei, []string{"huawei", "mediapad", "agassi"}},
	{ModelKindle, []string{"kindle", "silk", "kftt", "kfjwi"}},
	{ModelAndroid, []string{"android"}},
}

// model names the device brand of phones and tablets. Other classes have no
// model.
func model(lowerUA string, class Class) string {
	var name string
	switch class {
	case ClassMobile:
		name = firstMatch(lowerUA, phoneModels)
	case ClassTablet:
		if !strings.Contains(lowerUA, "ipad") && isWindowsTouch(lowerUA) {
			return ModelSurface
		}
		name = firstMatch(lowerUA, tabletModels)
	default:
		return ""
	}

	if name == "" {
		return ModelUnknown
	}
	return name
}
