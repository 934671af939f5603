package checkout

import (
	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
)

// Config holds the checkout defaults, loadable from environment variables
// (MESA_ prefix), flags, or YAML config files. The operator can override the
// discount values per order; the config provides the session defaults.
type Config struct {
	TaxRatePercent  float64 `default:"0" usage:"Tax rate applied to the subtotal, in percent" flag:"tax-rate"`
	DiscountAmount  float64 `default:"0" usage:"Default flat discount per order" flag:"discount-amount"`
	DiscountPercent float64 `default:"0" usage:"Default percentage discount per order" flag:"discount-percent"`
}

// LoadConfig loads configuration from environment variables and YAML config
// files.
func LoadConfig() (*Config, error) {
	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix: "MESA",
		Files:     []string{"config.yaml", "/etc/mesa/config.yaml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	return &cfg, nil
}
