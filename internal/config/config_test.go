package config

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	if cfg.Server.Port != "8080" {
		t.Fatalf("want port 8080 got %s", cfg.Server.Port)
	}
	if cfg.Customize.MaxScents != 3 {
		t.Fatalf("want max scents 3 got %d", cfg.Customize.MaxScents)
	}
	if cfg.Order.ShippingFee != 30000 {
		t.Fatalf("want shipping fee 30000 got %d", cfg.Order.ShippingFee)
	}
	if len(cfg.Customize.LogoSizeFees) != 2 {
		t.Fatalf("want 2 logo size fees got %d", len(cfg.Customize.LogoSizeFees))
	}
	if cfg.Cart.MaxQuantity <= 0 {
		t.Fatalf("cart max quantity should be positive")
	}
}

func TestLogConfigToLoggerOptions(t *testing.T) {
	opts := LogConfig{Dir: "/tmp/logs", Filename: "x.log", MaxSizeMB: 5, Stdout: true}.ToLoggerOptions()
	if opts.Dir != "/tmp/logs" || opts.Filename != "x.log" || opts.MaxSizeMB != 5 || !opts.Stdout {
		t.Fatalf("unexpected logger options: %+v", opts)
	}
}
