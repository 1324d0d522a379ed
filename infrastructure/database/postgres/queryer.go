package postgres

import (
	"database/sql"
)

// Execer executa comandos que não retornam linhas
type Execer interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
}

// Queryer agrega leitura e escrita sobre a conexão; os repositórios dependem
// desta interface para aceitar tanto a conexão quanto uma transação
type Queryer interface {
	Execer
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}
