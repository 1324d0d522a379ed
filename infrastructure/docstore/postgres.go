package docstore

import (
	"context"
	"sync"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/talent-commerce-api/infrastructure/database/postgres"
	"github.com/vfg2006/talent-commerce-api/pkg/utils"
)

const (
	documentsTable = "documents"

	// Canal usado pelo pg_notify para propagar alterações de coleções.
	// O payload da notificação é o nome da coleção alterada.
	notifyChannel = "docstore_changes"

	listenerMinReconnect = 10 * time.Second
	listenerMaxReconnect = time.Minute
)

// PostgresStore implementa o Store sobre uma tabela de documentos jsonb.
// Cada escrita emite pg_notify; um pq.Listener recebe as notificações,
// rebusca o snapshot da coleção e o entrega a todos os assinantes — inclusive
// de escritas feitas por outras instâncias da API.
type PostgresStore struct {
	conn     *postgres.Connection
	listener *pq.Listener

	mu        sync.Mutex
	subs      map[string]map[int]SnapshotFunc
	nextSubID int
	closed    bool
}

func NewPostgresStore(ctx context.Context, conn *postgres.Connection, dsn string) (*PostgresStore, error) {
	listener := pq.NewListener(dsn, listenerMinReconnect, listenerMaxReconnect, func(event pq.ListenerEventType, err error) {
		if err != nil {
			logrus.WithError(err).Warn("Evento do listener de documentos com erro")
		}
	})

	if err := listener.Listen(notifyChannel); err != nil {
		_ = listener.Close()
		return nil, errors.Wrap(err, "erro ao registrar canal de notificações do docstore")
	}

	s := &PostgresStore{
		conn:     conn,
		listener: listener,
		subs:     make(map[string]map[int]SnapshotFunc),
	}

	go s.listen(ctx)

	return s, nil
}

// listen consome notificações e redistribui snapshots até o contexto encerrar
func (s *PostgresStore) listen(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-s.listener.Notify:
			if !ok {
				return
			}
			// O listener envia nil após reconexões; nesse caso não sabemos
			// quais coleções mudaram e reentregamos todas as assinadas
			if n == nil {
				s.deliverAll(ctx)
				continue
			}
			s.deliver(ctx, n.Extra)
		case <-time.After(90 * time.Second):
			if err := s.listener.Ping(); err != nil {
				logrus.WithError(err).Warn("Falha no ping do listener de documentos")
			}
		}
	}
}

func (s *PostgresStore) deliverAll(ctx context.Context) {
	s.mu.Lock()
	collections := make([]string, 0, len(s.subs))
	for name, fns := range s.subs {
		if len(fns) > 0 {
			collections = append(collections, name)
		}
	}
	s.mu.Unlock()

	for _, name := range collections {
		s.deliver(ctx, name)
	}
}

// deliver rebusca o snapshot da coleção e o entrega aos assinantes
func (s *PostgresStore) deliver(ctx context.Context, collection string) {
	s.mu.Lock()
	fns := make([]SnapshotFunc, 0, len(s.subs[collection]))
	for _, fn := range s.subs[collection] {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	if len(fns) == 0 {
		return
	}

	docs, err := s.GetAll(ctx, collection)
	if err != nil {
		logrus.WithError(err).WithField("collection", collection).Error("Erro ao buscar snapshot para entrega")
		return
	}

	for _, fn := range fns {
		fn(docs)
	}
}

func (s *PostgresStore) Subscribe(ctx context.Context, collection string, fn SnapshotFunc) (Disposer, error) {
	docs, err := s.GetAll(ctx, collection)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.subs[collection] == nil {
		s.subs[collection] = make(map[int]SnapshotFunc)
	}
	id := s.nextSubID
	s.nextSubID++
	s.subs[collection][id] = fn
	s.mu.Unlock()

	// Entrega inicial com o estado corrente
	fn(docs)

	return func() {
		s.mu.Lock()
		delete(s.subs[collection], id)
		s.mu.Unlock()
	}, nil
}

func (s *PostgresStore) GetAll(ctx context.Context, collection string) ([]Document, error) {
	query, args, err := squirrel.
		Select("id", "data").
		From(documentsTable).
		Where(squirrel.Eq{"collection": collection}).
		OrderBy("created_at ASC", "id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := s.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a query")
	}
	defer rows.Close()

	docs := make([]Document, 0)
	for rows.Next() {
		var doc Document
		if err := rows.Scan(&doc.ID, &doc.Data); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear documento")
		}
		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return docs, nil
}

func (s *PostgresStore) Add(ctx context.Context, collection string, fields Fields) (string, error) {
	data, err := json.Marshal(resolveTimestamps(fields, time.Now().UTC()))
	if err != nil {
		return "", errors.Wrap(err, "erro ao serializar documento")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return "", errors.Wrap(err, "erro ao gerar id do documento")
	}

	query, args, err := squirrel.
		Insert(documentsTable).
		Columns("collection", "id", "data").
		Values(collection, id, data).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return "", errors.Wrap(err, "erro ao construir query de inserção")
	}

	if _, err := s.conn.ExecContext(ctx, query, args...); err != nil {
		return "", errors.Wrap(err, "erro ao inserir documento")
	}

	s.notifyChange(ctx, collection)
	return id, nil
}

func (s *PostgresStore) Update(ctx context.Context, collection string, id string, fields Fields) error {
	patch, err := json.Marshal(resolveTimestamps(fields, time.Now().UTC()))
	if err != nil {
		return errors.Wrap(err, "erro ao serializar alterações")
	}

	query, args, err := squirrel.
		Update(documentsTable).
		Set("data", squirrel.Expr("data || ?::jsonb", patch)).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"collection": collection, "id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir query de atualização")
	}

	result, err := s.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return errors.Wrap(err, "erro ao atualizar documento")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "erro ao verificar linhas afetadas")
	}
	if affected == 0 {
		return ErrDocumentNotFound
	}

	s.notifyChange(ctx, collection)
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, collection string, id string) error {
	query, args, err := squirrel.
		Delete(documentsTable).
		Where(squirrel.Eq{"collection": collection, "id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir query de exclusão")
	}

	if _, err := s.conn.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "erro ao excluir documento")
	}

	s.notifyChange(ctx, collection)
	return nil
}

func (s *PostgresStore) BatchDelete(ctx context.Context, collection string, ids []string) error {
	chunks := chunkIDs(ids, BatchLimit)
	if len(chunks) == 0 {
		return nil
	}

	var (
		wg       sync.WaitGroup
		errMu    sync.Mutex
		firstErr error
	)

	for _, chunk := range chunks {
		wg.Add(1)
		go func(chunk []string) {
			defer wg.Done()
			if err := s.deleteChunk(ctx, collection, chunk); err != nil {
				errMu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				errMu.Unlock()
			}
		}(chunk)
	}

	wg.Wait()

	s.notifyChange(ctx, collection)
	return firstErr
}

func (s *PostgresStore) deleteChunk(ctx context.Context, collection string, ids []string) error {
	query, args, err := squirrel.
		Delete(documentsTable).
		Where(squirrel.Eq{"collection": collection, "id": ids}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir query de exclusão em lote")
	}

	if _, err := s.conn.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "erro ao excluir lote de documentos")
	}

	return nil
}

// notifyChange propaga a alteração via pg_notify para todas as instâncias
func (s *PostgresStore) notifyChange(ctx context.Context, collection string) {
	if _, err := s.conn.ExecContext(ctx, "SELECT pg_notify($1, $2)", notifyChannel, collection); err != nil {
		logrus.WithError(err).WithField("collection", collection).Warn("Erro ao notificar alteração de coleção")
	}
}

// Close encerra o listener de notificações
func (s *PostgresStore) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	return s.listener.Close()
}
