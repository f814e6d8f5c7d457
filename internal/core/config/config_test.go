package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
app:
  name: portfolio-api
  http:
    port: 8080
jwt:
  secret: s3cret
store:
  driver: file
  path: /tmp/data.json
upload:
  strategy: remote
  serviceurl: https://img.example.com
  servicetoken: tok
mail:
  host: smtp.example.com
  username: me@example.com
  to: owner@example.com
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	c := Load(path)
	require.Equal(t, "portfolio-api", c.App.Name)
	require.Equal(t, 8080, c.App.HTTP.Port)
	require.Equal(t, "s3cret", c.JWT.Secret)
	require.Equal(t, "file", c.Store.Driver)
	require.Equal(t, "remote", c.Upload.Strategy)
	require.Equal(t, "https://img.example.com", c.Upload.ServiceURL)

	// defaults fill in everything the file leaves out
	require.Equal(t, 168, c.JWT.TTLHours)
	require.Equal(t, 5, c.Upload.MaxSizeMB)
	require.Equal(t, 587, c.Mail.Port)
	require.Equal(t, "./public", c.Upload.PublicDir)
}
