package cookie

import "net/http"

// Config holds the view cookie settings.
type Config struct {
	Name     string        `env:"COOKIE_NAME" envDefault:"device_view"`
	Path     string        `env:"COOKIE_PATH" envDefault:"/"`
	Domain   string        `env:"COOKIE_DOMAIN" envDefault:""`
	Secure   bool          `env:"COOKIE_SECURE" envDefault:"false"`
	HttpOnly bool          `env:"COOKIE_HTTP_ONLY" envDefault:"true"`
	SameSite http.SameSite `env:"COOKIE_SAME_SITE" envDefault:"2"` // 2 = SameSiteLaxMode
	Expire   string        `env:"COOKIE_EXPIRE" envDefault:"1 month"`
}

// DefaultConfig returns the default view cookie configuration.
func DefaultConfig() Config {
	return Config{
		Name:     DefaultName,
		Path:     "/",
		Domain:   "",
		Secure:   false,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expire:   DefaultExpire,
	}
}

// NewFromConfig creates a new Manager from the provided Config.
// Empty path, name and expiry fall back to the package defaults; the boolean
// flags are always taken as given.
func NewFromConfig(cfg Config, opts ...Option) (*Manager, error) {
	configOpts := make([]Option, 0, 6+len(opts))

	if cfg.Path != "" {
		configOpts = append(configOpts, WithPath(cfg.Path))
	}
	if cfg.Domain != "" {
		configOpts = append(configOpts, WithDomain(cfg.Domain))
	}
	if cfg.SameSite != 0 {
		configOpts = append(configOpts, WithSameSite(cfg.SameSite))
	}
	if cfg.Expire != "" {
		configOpts = append(configOpts, WithExpire(cfg.Expire))
	}
	configOpts = append(configOpts,
		WithSecure(cfg.Secure),
		WithHTTPOnly(cfg.HttpOnly),
	)

	// Append any additional options provided
	configOpts = append(configOpts, opts...)

	name := cfg.Name
	if name == "" {
		name = DefaultName
	}

	return New(name, configOpts...)
}
