package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa a configuração da aplicação (leitura via Viper de env e opcionalmente arquivo .env).
type Config struct {
	App  AppConfig
	DB   DBConfig
	JWT  JWTConfig
	HTTP HTTPConfig
}

// AppConfig configuração geral da aplicação.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// DBConfig configuração do MongoDB.
type DBConfig struct {
	URI    string // mongodb://... ou mongodb+srv://...
	DBName string
}

// JWTConfig configuração do token de acesso.
type JWTConfig struct {
	Secret     string
	ExpMinutes int // minutos até a expiração
}

// HTTPConfig configuração do servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devolve o endereço de escuta (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load lê a configuração das variáveis de ambiente (e opcionalmente do arquivo .env).
// As env vars têm prioridade. Nomes esperados: PORT, MONGODB_URI, DB_NAME, SECRET_KEY, EXPIRES_IN.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: arquivo .env na raiz do projeto
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos o erro se não existir

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "api-prestadores"),
		},
		DB: DBConfig{
			URI:    getString(v, "MONGODB_URI", ""),
			DBName: getString(v, "DB_NAME", "api"),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "SECRET_KEY", ""),
			ExpMinutes: getInt(v, "EXPIRES_IN", 60),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HOST", "0.0.0.0"),
			Port: getInt(v, "PORT", 4000),
		},
	}

	if cfg.DB.URI == "" {
		return nil, fmt.Errorf("config: MONGODB_URI é obrigatória")
	}
	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("config: SECRET_KEY é obrigatória")
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		if s := v.GetString(key); s != "" {
			return s
		}
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		// valores não numéricos caem no default em vez de virar zero
		if s := v.GetString(key); s != "" {
			if n, err := strconv.Atoi(s); err == nil {
				return n
			}
		}
	}
	return def
}
