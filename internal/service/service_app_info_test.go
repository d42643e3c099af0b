package service

import (
	"testing"

	"github.com/MKhiriev/truvoice/internal/config"
	"github.com/MKhiriev/truvoice/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppInfoService(t *testing.T) {
	tests := []struct {
		name    string
		version string
		want    string
		wantErr error
	}{
		{name: "semantic version", version: "1.0.0", want: "1.0.0"},
		{name: "pre-release with build metadata", version: "v2.0.0-beta+build.42", want: "v2.0.0-beta+build.42"},
		{name: "build fallback", version: "N/A", want: "N/A"},
		{name: "surrounding whitespace is dropped", version: " 1.4.0\n", want: "1.4.0"},
		{name: "empty version", version: "", wantErr: ErrVersionIsNotSpecified},
		{name: "blank version", version: "   ", wantErr: ErrVersionIsNotSpecified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewAppInfoService(config.App{Version: tt.version}, logger.Nop())

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, svc)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, svc.GetAppVersion(t.Context()))
		})
	}
}

func TestAppInfoService_VersionIsStable(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "3.1.4"}, logger.Nop())
	require.NoError(t, err)

	for range 3 {
		assert.Equal(t, "3.1.4", svc.GetAppVersion(t.Context()))
	}
}
