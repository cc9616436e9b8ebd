package db

import (
	"os"
	"strconv"

	"gorm.io/gorm"
)

// GetDB monta a conexão a partir das variáveis de ambiente.
func GetDB() (*gorm.DB, error) {
	host := os.Getenv("DB_HOST")
	portStr := os.Getenv("DB_PORT")
	port, err := strconv.ParseUint(portStr, 10, 32)
	if err != nil {
		port = 5432 // porta padrão do PostgreSQL
	}

	nome := os.Getenv("DB_NAME")
	usuario := os.Getenv("DB_USER")
	senha := os.Getenv("DB_PASSWORD")
	return ConnectDataBase(uint(port), host, nome, usuario, senha)
}
