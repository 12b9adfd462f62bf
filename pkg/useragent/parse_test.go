package useragent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mobiledetect/pkg/useragent"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		ua      string
		class   useragent.Class
		model   string
		os      string
		browser string
		version string
	}{
		{
			name: "iPhone Safari", ua: uaIPhone,
			class: useragent.ClassMobile, model: useragent.ModelIPhone, os: useragent.OSiOS,
			browser: useragent.BrowserSafari, version: "14.0",
		},
		{
			name: "iPad", ua: uaIPad,
			class: useragent.ClassTablet, model: useragent.ModelIPad, os: useragent.OSiOS,
			browser: useragent.BrowserSafari, version: "13.0.3",
		},
		{
			name: "iPhone Chrome", ua: "Mozilla/5.0 (iPhone; CPU iPhone OS 16_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) CriOS/108.0.5359.52 Mobile/15E148 Safari/604.1",
			class: useragent.ClassMobile, model: useragent.ModelIPhone, os: useragent.OSiOS,
			browser: useragent.BrowserChrome, version: "108.0.5359.52",
		},
		{
			name: "Samsung phone", ua: uaAndroidPhone,
			class: useragent.ClassMobile, model: useragent.ModelSamsung, os: useragent.OSAndroid,
			browser: useragent.BrowserChrome, version: "91.0.4472.120",
		},
		{
			name: "Samsung tablet", ua: uaAndroidTablet,
			class: useragent.ClassTablet, model: useragent.ModelSamsung, os: useragent.OSAndroid,
			browser: useragent.BrowserChrome, version: "91.0.4472.120",
		},
		{
			name: "Samsung Internet", ua: "Mozilla/5.0 (Linux; Android 12; SM-A525F) AppleWebKit/537.36 (KHTML, like Gecko) SamsungBrowser/17.0 Chrome/96.0.4664.104 Mobile Safari/537.36",
			class: useragent.ClassMobile, model: useragent.ModelSamsung, os: useragent.OSAndroid,
			browser: useragent.BrowserSamsung, version: "17.0",
		},
		{
			name: "Pixel", ua: "Mozilla/5.0 (Linux; Android 13; Pixel 7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/112.0.0.0 Mobile Safari/537.36",
			class: useragent.ClassMobile, model: useragent.ModelAndroid, os: useragent.OSAndroid,
			browser: useragent.BrowserChrome, version: "112.0.0.0",
		},
		{
			name: "Kindle Fire", ua: "Mozilla/5.0 (Linux; U; Android 4.0.3; en-us; KFTT Build/IML74K) AppleWebKit/537.36 (KHTML, like Gecko) Silk/3.68 like Chrome/39.0.2171.93 Safari/537.36",
			class: useragent.ClassTablet, model: useragent.ModelKindle, os: useragent.OSAndroid,
			browser: useragent.BrowserChrome, version: "39.0.2171.93",
		},
		{
			name: "Windows Phone", ua: uaWindowsPhone,
			class: useragent.ClassMobile, model: useragent.ModelUnknown, os: useragent.OSWindowsPhone,
			browser: useragent.BrowserIE, version: "10.0",
		},
		{
			name: "Surface", ua: "Mozilla/5.0 (Windows NT 10.0; Win64; x64; Touch) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
			class: useragent.ClassTablet, model: useragent.ModelSurface, os: useragent.OSWindows,
			browser: useragent.BrowserChrome, version: "91.0.4472.124",
		},
		{
			name: "Edge on Windows", ua: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36 Edg/91.0.864.59",
			class: useragent.ClassDesktop, os: useragent.OSWindows,
			browser: useragent.BrowserEdge, version: "91.0.864.59",
		},
		{
			name: "Firefox on Linux", ua: "Mozilla/5.0 (X11; Ubuntu; Linux x86_64; rv:89.0) Gecko/20100101 Firefox/89.0",
			class: useragent.ClassDesktop, os: useragent.OSLinux,
			browser: useragent.BrowserFirefox, version: "89.0",
		},
		{
			name: "Safari on macOS", ua: "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.1.1 Safari/605.1.15",
			class: useragent.ClassDesktop, os: useragent.OSMacOS,
			browser: useragent.BrowserSafari, version: "14.1.1",
		},
		{
			name: "IE 11", ua: "Mozilla/5.0 (Windows NT 10.0; WOW64; Trident/7.0; rv:11.0) like Gecko",
			class: useragent.ClassDesktop, os: useragent.OSWindows,
			browser: useragent.BrowserIE, version: "11.0",
		},
		{
			name: "Googlebot", ua: "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)",
			class: useragent.ClassBot, os: useragent.OSUnknown, browser: useragent.BrowserUnknown,
		},
		{
			name: "PlayStation", ua: "Mozilla/5.0 (PlayStation 4 3.11) AppleWebKit/537.73 (KHTML, like Gecko)",
			class: useragent.ClassConsole, os: useragent.OSUnknown, browser: useragent.BrowserUnknown,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			info, err := useragent.Parse(tc.ua)
			require.NoError(t, err)
			assert.Equal(t, tc.ua, info.Raw)
			assert.Equal(t, tc.class, info.Class, "class")
			assert.Equal(t, tc.model, info.Model, "model")
			assert.Equal(t, tc.os, info.OS, "os")
			assert.Equal(t, tc.browser, info.Browser, "browser")
			assert.Equal(t, tc.version, info.BrowserVersion, "version")
		})
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	info, err := useragent.Parse("")
	require.ErrorIs(t, err, useragent.ErrEmptyUserAgent)
	assert.Equal(t, useragent.ClassUnknown, info.Class)

	info, err = useragent.Parse("curl/8.0.1")
	require.ErrorIs(t, err, useragent.ErrUnknownDevice)
	assert.Equal(t, useragent.ClassUnknown, info.Class)
	assert.Empty(t, info.Model)
}

func TestInfo_Label(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ua   string
		want string
	}{
		{uaIPhone, "Safari 14.0 on iOS (mobile)"},
		{uaAndroidTablet, "Chrome 91.0 on Android (tablet)"},
		{uaDesktop, "Chrome 91.0 on Windows (desktop)"},
		{uaWindowsPhone, "Internet Explorer 10.0 on Windows Phone (mobile)"},
		{"Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)", "Googlebot (bot)"},
		{"Mozilla/5.0 (compatible; AhrefsBot/7.0; +http://ahrefs.com/robot/)", "Ahrefsbot (bot)"},
		{"Mozilla/5.0 (PlayStation 4 3.11) AppleWebKit/537.73 (KHTML, like Gecko)", "Unknown browser (console)"},
		{"", "Unknown device"},
		{"agent", "Unknown device"},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			t.Parallel()
			info, _ := useragent.Parse(tc.ua)
			assert.Equal(t, tc.want, info.Label())
		})
	}
}
