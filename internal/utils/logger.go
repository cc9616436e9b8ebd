package utils

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Logger é o logger compartilhado da aplicação.
var Logger = logrus.New()

// InitLogger configura o logger a partir da variável LOG_LEVEL.
func InitLogger() {
	Logger.SetOutput(os.Stdout)

	nivelStr := strings.ToLower(os.Getenv("LOG_LEVEL"))
	if nivelStr == "" {
		nivelStr = "info"
	}
	nivel, err := logrus.ParseLevel(nivelStr)
	if err != nil {
		Logger.Warnf("LOG_LEVEL inválido %q, usando info", nivelStr)
		nivel = logrus.InfoLevel
	}
	Logger.SetLevel(nivel)

	Logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
}
