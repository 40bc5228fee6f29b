package config

import (
	"encoding/json"
	"os"

	"github.com/fabienvalero1/userdir/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. After parsing,
// values are copied into the runtime Config.
type JsonConfig struct {
	ServerBaseURL string `json:"server_base_url"`
	StateDSN      string `json:"state_dsn"`
}

// parseJson overlays Config with values loaded from a JSON file named by the
// -c/-config flags. Missing flag means no JSON is loaded; unreadable or
// invalid JSON panics.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	cfg.ServerBaseURL = jc.ServerBaseURL
	cfg.StateDSN = jc.StateDSN
}
