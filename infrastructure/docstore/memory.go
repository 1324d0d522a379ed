package docstore

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/talent-commerce-api/pkg/utils"
)

// MemoryStore é uma implementação em memória do Store, usada em testes e em
// desenvolvimento local. Preserva a ordem de inserção dos documentos nos
// snapshots entregues.
type MemoryStore struct {
	mu          sync.Mutex
	collections map[string]*memCollection
	subs        map[string]map[int]SnapshotFunc
	nextSubID   int
}

type memCollection struct {
	order []string
	docs  map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		collections: make(map[string]*memCollection),
		subs:        make(map[string]map[int]SnapshotFunc),
	}
}

func (m *MemoryStore) collection(name string) *memCollection {
	col, ok := m.collections[name]
	if !ok {
		col = &memCollection{docs: make(map[string][]byte)}
		m.collections[name] = col
	}
	return col
}

// snapshotLocked monta o snapshot na ordem de inserção. Chamador segura o mutex.
func (m *MemoryStore) snapshotLocked(name string) []Document {
	col := m.collection(name)
	docs := make([]Document, 0, len(col.order))
	for _, id := range col.order {
		data, ok := col.docs[id]
		if !ok {
			continue
		}
		raw := make([]byte, len(data))
		copy(raw, data)
		docs = append(docs, Document{ID: id, Data: raw})
	}
	return docs
}

// notify entrega o snapshot atual a todos os assinantes da coleção
func (m *MemoryStore) notify(name string) {
	m.mu.Lock()
	docs := m.snapshotLocked(name)
	fns := make([]SnapshotFunc, 0, len(m.subs[name]))
	for _, fn := range m.subs[name] {
		fns = append(fns, fn)
	}
	m.mu.Unlock()

	for _, fn := range fns {
		fn(docs)
	}
}

func (m *MemoryStore) Subscribe(_ context.Context, collection string, fn SnapshotFunc) (Disposer, error) {
	m.mu.Lock()
	if m.subs[collection] == nil {
		m.subs[collection] = make(map[int]SnapshotFunc)
	}
	id := m.nextSubID
	m.nextSubID++
	m.subs[collection][id] = fn
	docs := m.snapshotLocked(collection)
	m.mu.Unlock()

	// Entrega inicial: o assinante recebe o estado corrente imediatamente
	fn(docs)

	return func() {
		m.mu.Lock()
		delete(m.subs[collection], id)
		m.mu.Unlock()
	}, nil
}

func (m *MemoryStore) GetAll(_ context.Context, collection string) ([]Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked(collection), nil
}

func (m *MemoryStore) Add(_ context.Context, collection string, fields Fields) (string, error) {
	data, err := json.Marshal(resolveTimestamps(fields, time.Now().UTC()))
	if err != nil {
		return "", errors.Wrap(err, "erro ao serializar documento")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return "", errors.Wrap(err, "erro ao gerar id do documento")
	}

	m.mu.Lock()
	col := m.collection(collection)
	col.order = append(col.order, id)
	col.docs[id] = data
	m.mu.Unlock()

	m.notify(collection)
	return id, nil
}

func (m *MemoryStore) Update(_ context.Context, collection string, id string, fields Fields) error {
	m.mu.Lock()
	col := m.collection(collection)
	current, ok := col.docs[id]
	if !ok {
		m.mu.Unlock()
		return ErrDocumentNotFound
	}

	merged := make(map[string]any)
	if err := json.Unmarshal(current, &merged); err != nil {
		m.mu.Unlock()
		return errors.Wrapf(err, "erro ao desserializar documento %s", id)
	}
	for k, v := range resolveTimestamps(fields, time.Now().UTC()) {
		merged[k] = v
	}

	data, err := json.Marshal(merged)
	if err != nil {
		m.mu.Unlock()
		return errors.Wrapf(err, "erro ao serializar documento %s", id)
	}
	col.docs[id] = data
	m.mu.Unlock()

	m.notify(collection)
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, collection string, id string) error {
	m.mu.Lock()
	col := m.collection(collection)
	delete(col.docs, id)
	m.mu.Unlock()

	m.notify(collection)
	return nil
}

func (m *MemoryStore) BatchDelete(ctx context.Context, collection string, ids []string) error {
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
			if err := m.deleteChunk(collection, chunk); err != nil {
				errMu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				errMu.Unlock()
			}
		}(chunk)
	}

	wg.Wait()

	m.notify(collection)
	return firstErr
}

func (m *MemoryStore) deleteChunk(collection string, ids []string) error {
	m.mu.Lock()
	col := m.collection(collection)
	for _, id := range ids {
		delete(col.docs, id)
	}
	m.mu.Unlock()
	return nil
}
