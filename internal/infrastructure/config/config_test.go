package config

import (
	"context"
	"testing"

	"github.com/sethvargo/go-envconfig"
)

func TestLoadFrom(t *testing.T) {
	cfg, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
		"PORT":  "9090",
		"STORE": "mongo",
	}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "9090" || cfg.Store != StoreMongo || cfg.Mongo.Database != "lifeassist" || cfg.LogLevel != "info" {
		t.Fatalf("unexpected config %+v", cfg)
	}

	if _, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{"STORE": "sqlite"})); err == nil {
		t.Fatal("expected error for unknown store")
	}
}
