package mobiledetect

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/dmitrymomot/mobiledetect/pkg/collector"
	"github.com/dmitrymomot/mobiledetect/pkg/config"
	"github.com/dmitrymomot/mobiledetect/pkg/cookie"
	"github.com/dmitrymomot/mobiledetect/pkg/deviceview"
	"github.com/dmitrymomot/mobiledetect/pkg/logger"
)

// RuleConfig is the redirect rule of one view.
type RuleConfig struct {
	Enabled    bool   `env:"IS_ENABLED" envDefault:"false"`
	Host       string `env:"HOST"` // absolute URL, e.g. "http://m.example.com"
	StatusCode int    `env:"STATUS_CODE" envDefault:"302"`
	Action     string `env:"ACTION" envDefault:"redirect"`
}

// Config is the environment configuration of the bundle.
type Config struct {
	Mobile RuleConfig `envPrefix:"MOBILE_DETECT_MOBILE_"`
	Tablet RuleConfig `envPrefix:"MOBILE_DETECT_TABLET_"`
	Full   RuleConfig `envPrefix:"MOBILE_DETECT_FULL_"`

	DetectTabletAsMobile  bool   `env:"MOBILE_DETECT_DETECT_TABLET_AS_MOBILE" envDefault:"false"`
	SaveRefererPath       bool   `env:"MOBILE_DETECT_SAVE_REFERER_PATH" envDefault:"true"`
	SwitchParam           string `env:"MOBILE_DETECT_SWITCH_PARAM" envDefault:"device_view"`
	TrustForwardedHeaders bool   `env:"MOBILE_DETECT_TRUST_FORWARDED_HEADERS" envDefault:"false"`

	Cookie cookie.Config `envPrefix:"MOBILE_DETECT_"`

	ProfilerEnabled  bool                  `env:"MOBILE_DETECT_PROFILER_ENABLED" envDefault:"false"`
	ProfilerCapacity int                   `env:"MOBILE_DETECT_PROFILER_CAPACITY" envDefault:"100"`
	ProfilerRedis    collector.RedisConfig `envPrefix:"MOBILE_DETECT_PROFILER_"`
}

// DefaultConfig returns the configuration used when nothing is set: no
// redirects, the "device_view" switch parameter and cookie, and no profiler.
func DefaultConfig() Config {
	rule := RuleConfig{StatusCode: http.StatusFound, Action: string(deviceview.ActionRedirect)}
	return Config{
		Mobile:           rule,
		Tablet:           rule,
		Full:             rule,
		SaveRefererPath:  true,
		SwitchParam:      deviceview.DefaultSwitchParam,
		Cookie:           cookie.DefaultConfig(),
		ProfilerCapacity: collector.DefaultCapacity,
	}
}

// LoadConfig reads Config from the environment and validates it.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration once at startup. An enabled rule whose
// host is not an absolute URL is disabled with a warning, since requests must
// never fail on it. Unknown actions and non-redirect status codes are errors.
func (c *Config) Validate() error {
	return c.validate(slog.Default())
}

func (c *Config) validate(log *slog.Logger) error {
	var errs []error

	for _, r := range []struct {
		view deviceview.View
		rule *RuleConfig
	}{
		{deviceview.ViewMobile, &c.Mobile},
		{deviceview.ViewTablet, &c.Tablet},
		{deviceview.ViewDesktop, &c.Full},
	} {
		if r.rule.Action != "" {
			if _, ok := deviceview.ParseAction(r.rule.Action); !ok {
				errs = append(errs, fmt.Errorf("%w: %s: %q", ErrInvalidAction, r.view, r.rule.Action))
			}
		}

		if r.rule.StatusCode != 0 && (r.rule.StatusCode < 300 || r.rule.StatusCode > 399) {
			errs = append(errs, fmt.Errorf("%w: %s: %d", ErrInvalidStatusCode, r.view, r.rule.StatusCode))
		}

		if r.rule.Enabled && !validHost(r.rule.Host) {
			log.Warn("redirect disabled: invalid host",
				logger.DeviceView(r.view.String()),
				slog.String("host", r.rule.Host),
			)
			r.rule.Enabled = false
		}
	}

	if c.SwitchParam == "" {
		errs = append(errs, ErrEmptySwitchParam)
	}
	if c.ProfilerCapacity < 0 {
		errs = append(errs, fmt.Errorf("%w: %d", ErrInvalidCapacity, c.ProfilerCapacity))
	}

	return errors.Join(errs...)
}

// RedirectConfig converts the rules to their deviceview form.
func (c Config) RedirectConfig() deviceview.RedirectConfig {
	return deviceview.RedirectConfig{
		Mobile:               c.Mobile.rule(),
		Tablet:               c.Tablet.rule(),
		Desktop:              c.Full.rule(),
		DetectTabletAsMobile: c.DetectTabletAsMobile,
	}
}

func (rc RuleConfig) rule() *deviceview.RedirectRule {
	action, ok := deviceview.ParseAction(rc.Action)
	if !ok {
		action = deviceview.ActionRedirect
	}
	return &deviceview.RedirectRule{
		Enabled:    rc.Enabled,
		Host:       rc.Host,
		StatusCode: rc.StatusCode,
		Action:     action,
	}
}

func validHost(host string) bool {
	u, err := url.Parse(host)
	return err == nil && u.Scheme != "" && u.Host != ""
}
