// Package fs implementa store.Store sobre archivos JSON planos.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/dropDatabas3/catalogo/internal/metrics"
	"github.com/dropDatabas3/catalogo/internal/store"
	"github.com/dropDatabas3/catalogo/internal/util/atomicwrite"
)

// Provider persiste cada tabla como <root>/<tabla>.json.
// Mantiene un mutex por tabla para serializar escrituras; las lecturas no
// toman lock porque la escritura es atómica (rename) y nunca se observa
// un archivo a medio escribir.
type Provider struct {
	root string

	mu    sync.Mutex // protege locks
	locks map[store.Table]*sync.Mutex
}

// New crea un Provider con root como directorio de datos.
// El directorio se crea recién en la primera escritura.
func New(root string) *Provider {
	return &Provider{
		root:  filepath.Clean(root),
		locks: make(map[store.Table]*sync.Mutex),
	}
}

// Root devuelve el directorio de datos configurado.
func (p *Provider) Root() string { return p.root }

func (p *Provider) tableFile(t store.Table) string {
	return filepath.Join(p.root, string(t)+".json")
}

func (p *Provider) Load(ctx context.Context, t store.Table) ([]byte, error) {
	b, err := os.ReadFile(p.tableFile(t))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, store.ErrNotExist
		}
		return nil, err
	}
	return b, nil
}

func (p *Provider) Save(ctx context.Context, t store.Table, doc []byte) error {
	if err := atomicwrite.AtomicWriteFile(p.tableFile(t), doc, 0o644); err != nil {
		return err
	}
	metrics.StoreWritesTotal.WithLabelValues(string(t)).Inc()
	return nil
}

func (p *Provider) Locker(t store.Table) sync.Locker {
	p.mu.Lock()
	defer p.mu.Unlock()
	l, ok := p.locks[t]
	if !ok {
		l = &sync.Mutex{}
		p.locks[t] = l
	}
	return l
}
