package commands

import (
	"ArmoryExchange/internal/config"
	"path/filepath"
	"testing"
)

// withTempConfig возвращает конфиг, у которого файл токена лежит во временном каталоге.
func withTempConfig(t *testing.T, serverURL string) *config.Config {
	t.Helper()
	return &config.Config{
		ServerURL: serverURL,
		TokenFile: filepath.Join(t.TempDir(), "token"),
	}
}
