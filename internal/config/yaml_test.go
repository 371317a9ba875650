package config

import (
	"errors"
	"testing"
)

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	t.Run("decodes over existing values", func(t *testing.T) {
		t.Parallel()

		cfg := DefaultConfig()
		if err := unmarshalStrict([]byte("images:\n  jpegQuality: 75\n"), cfg); err != nil {
			t.Fatalf("unmarshalStrict() error = %v", err)
		}
		if cfg.Images.JPEGQuality != 75 || cfg.Images.Dir != "images" {
			t.Errorf("Images = %+v", cfg.Images)
		}
	})

	tests := []struct {
		name    string
		data    []byte
		dst     any
		wantErr error
	}{
		{name: "nil data", data: nil, dst: &Config{}, wantErr: ErrNilData},
		{name: "nil destination", data: []byte("a: 1"), dst: nil, wantErr: ErrNilDestination},
		{name: "too large", data: make([]byte, MaxInputSize+1), dst: &Config{}, wantErr: ErrInputTooLarge},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := unmarshalStrict(tt.data, tt.dst)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("unmarshalStrict() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
