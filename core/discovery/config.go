package discovery

// Config holds configuration for mDNS service advertisement.
type Config struct {
	// Enabled toggles advertisement on the local network.
	Enabled bool `mapstructure:"enabled" default:"true"`
	// Instance is the advertised instance name.
	Instance string `mapstructure:"instance" default:"servo-controller"`
	// Service is the advertised DNS-SD service type.
	Service string `mapstructure:"service" default:"_servo-ctrl._tcp"`
	// Domain is the mDNS domain.
	Domain string `mapstructure:"domain" default:"local."`
	// Interface pins advertisement to one network interface. Empty uses all.
	Interface string `mapstructure:"interface" default:""`
}
