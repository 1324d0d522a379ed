// Package docstore implementa o armazenamento de documentos em tempo real:
// coleções nomeadas de documentos JSON com assinaturas que entregam o
// snapshot completo da coleção a cada alteração.
package docstore

import (
	"context"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// BatchLimit é o número máximo de operações por lote. Exclusões em massa
// maiores são divididas em lotes sequenciais executados concorrentemente.
const BatchLimit = 500

// ServerTimestamp é o valor sentinela que instrui o store a gravar o
// horário atual do servidor no campo
const ServerTimestamp = "__SERVER_TIMESTAMP__"

// ErrDocumentNotFound é retornado por Update quando o documento não existe
var ErrDocumentNotFound = errors.New("documento não encontrado")

// Fields é o payload de escrita de um documento (criação ou merge parcial)
type Fields map[string]any

// Document é um documento lido de uma coleção. Data é o payload JSON sem o id.
type Document struct {
	ID   string
	Data []byte
}

// Decode desserializa o documento em v, mesclando o id atribuído pelo store
// no campo "id" do destino
func (d Document) Decode(v any) error {
	merged := make(map[string]any)
	if len(d.Data) > 0 {
		if err := json.Unmarshal(d.Data, &merged); err != nil {
			return errors.Wrapf(err, "erro ao desserializar documento %s", d.ID)
		}
	}
	merged["id"] = d.ID

	raw, err := json.Marshal(merged)
	if err != nil {
		return errors.Wrapf(err, "erro ao serializar documento %s", d.ID)
	}

	return errors.Wrapf(json.Unmarshal(raw, v), "erro ao decodificar documento %s", d.ID)
}

// DecodeAll desserializa um snapshot completo em valores tipados.
// Documentos malformados interrompem a decodificação com erro.
func DecodeAll[T any](docs []Document) ([]T, error) {
	out := make([]T, 0, len(docs))
	for _, d := range docs {
		var v T
		if err := d.Decode(&v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Disposer interrompe a entrega de snapshots de uma assinatura
type Disposer func()

// SnapshotFunc recebe o snapshot completo e atual da coleção. Cada entrega é
// autoritativa: o consumidor deve substituir integralmente o estado anterior.
type SnapshotFunc func(docs []Document)

// Store é o contrato da camada de persistência de documentos.
//
//go:generate mockgen -source=docstore.go -destination=mocks/store.go -package=mocks Store
type Store interface {
	// Subscribe registra um callback que recebe o snapshot completo da
	// coleção imediatamente e a cada alteração subsequente
	Subscribe(ctx context.Context, collection string, fn SnapshotFunc) (Disposer, error)

	// GetAll busca o snapshot atual da coleção uma única vez
	GetAll(ctx context.Context, collection string) ([]Document, error)

	// Add cria um documento com id atribuído pelo store
	Add(ctx context.Context, collection string, fields Fields) (string, error)

	// Update aplica um merge parcial ao documento existente
	Update(ctx context.Context, collection string, id string, fields Fields) error

	// Delete remove o documento; remover um documento inexistente não é erro
	Delete(ctx context.Context, collection string, id string) error

	// BatchDelete remove vários documentos, dividindo em lotes de até
	// BatchLimit executados concorrentemente. Retorna somente após todos os
	// lotes completarem. Lotes parcialmente confirmados em caso de falha não
	// são reconciliados.
	BatchDelete(ctx context.Context, collection string, ids []string) error
}

// resolveTimestamps substitui o sentinela ServerTimestamp pelo horário atual
func resolveTimestamps(fields Fields, now time.Time) Fields {
	out := make(Fields, len(fields))
	for k, v := range fields {
		if s, ok := v.(string); ok && s == ServerTimestamp {
			out[k] = now
			continue
		}
		out[k] = v
	}
	return out
}

// chunkIDs divide a lista de ids em lotes de no máximo size elementos
func chunkIDs(ids []string, size int) [][]string {
	if len(ids) == 0 {
		return nil
	}
	chunks := make([][]string, 0, (len(ids)+size-1)/size)
	for start := 0; start < len(ids); start += size {
		end := start + size
		if end > len(ids) {
			end = len(ids)
		}
		chunks = append(chunks, ids[start:end])
	}
	return chunks
}
