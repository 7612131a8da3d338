// Package memory implementa store.Store en memoria.
// Se usa en tests para no tocar disco; mismo contrato que el provider fs.
package memory

import (
	"context"
	"sync"

	"github.com/dropDatabas3/catalogo/internal/store"
)

type Provider struct {
	mu    sync.RWMutex
	docs  map[store.Table][]byte
	locks map[store.Table]*sync.Mutex
}

func New() *Provider {
	return &Provider{
		docs:  make(map[store.Table][]byte),
		locks: make(map[store.Table]*sync.Mutex),
	}
}

func (p *Provider) Load(ctx context.Context, t store.Table) ([]byte, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	b, ok := p.docs[t]
	if !ok {
		return nil, store.ErrNotExist
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}

func (p *Provider) Save(ctx context.Context, t store.Table, doc []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	b := make([]byte, len(doc))
	copy(b, doc)
	p.docs[t] = b
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
