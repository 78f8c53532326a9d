package config

import (
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// CompanyProfile is the business identity printed on invoices and emails.
// It loads from a YAML file and hot-reloads on change; environment variables
// fill anything the file leaves out.
type CompanyProfile struct {
	Name          string `mapstructure:"name"`
	Email         string `mapstructure:"email"`
	Phone         string `mapstructure:"phone"`
	Address       string `mapstructure:"address"`
	LogoURL       string `mapstructure:"logo_url"`
	FooterMessage string `mapstructure:"footer_message"`
}

type CompanyProvider struct {
	mu      sync.RWMutex
	current CompanyProfile
}

func NewCompanyProvider(cfg Config, log *zap.Logger) *CompanyProvider {
	p := &CompanyProvider{}

	v := viper.New()
	v.SetConfigFile(cfg.CompanyProfilePath)
	v.SetConfigType("yaml")

	v.SetDefault("name", getenv("COMPANY_NAME", ""))
	v.SetDefault("email", getenv("COMPANY_EMAIL", ""))
	v.SetDefault("phone", getenv("COMPANY_PHONE", ""))
	v.SetDefault("address", getenv("COMPANY_ADDRESS", ""))
	v.SetDefault("logo_url", getenv("LOGO_URL", ""))
	v.SetDefault("footer_message", getenv("FOOTER_MESSAGE", ""))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Warn("company profile not readable, using environment values",
				zap.String("path", cfg.CompanyProfilePath),
				zap.Error(err))
		}
	}

	p.apply(v, log)

	v.OnConfigChange(func(e fsnotify.Event) {
		log.Info("company profile changed, reloading", zap.String("file", e.Name))
		p.apply(v, log)
	})
	v.WatchConfig()

	return p
}

func (p *CompanyProvider) apply(v *viper.Viper, log *zap.Logger) {
	var profile CompanyProfile
	if err := v.Unmarshal(&profile); err != nil {
		log.Error("invalid company profile, keeping previous", zap.Error(err))
		return
	}
	p.mu.Lock()
	p.current = profile
	p.mu.Unlock()
}

func (p *CompanyProvider) Profile() CompanyProfile {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current
}

func (p *CompanyProfile) DisplayName() string {
	return strings.TrimSpace(p.Name)
}
