// Package useragent classifies HTTP User-Agent strings into device classes.
//
// Parse reads the class (desktop, mobile, tablet, TV, console, bot), the
// phone or tablet brand, the operating system and the browser from ordered
// keyword tables. It only does substring look-ups plus one pre-compiled
// expression per browser, so it is cheap enough to run on every request.
//
// Detector sits on top of Parse and answers the questions a device-aware
// web layer asks:
//
//	d := useragent.NewDetector()
//	dev := d.Detect(r.UserAgent())
//
//	dev.IsMobile()          // phones and tablets
//	dev.IsTablet()          // tablets only
//	dev.IsIOS()             // iPhone, iPad, iPod
//	dev.Is("samsung")       // model, OS, browser or custom rule
//	dev.Version("Android")  // "13"
//	dev.Label()             // "Chrome 112.0 on Android (mobile)"
//
// IsMobile is true for tablets as well. Callers that need to tell the two
// apart check IsTablet first.
//
// Custom rules can be registered with WithRule and are reported by
// Detector.Rules next to the built-in keyword tables.
//
// Parse returns ErrEmptyUserAgent or ErrUnknownDevice together with a usable
// Info. Detect ignores both: an agent that cannot be classified is treated as
// a desktop browser by the callers.
package useragent
