package helpers

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/sisoputnfrba/tp-planificador-Los-magiOS/kernel/models"
)

var ErrRunNotFound = errors.New("corrida no encontrada")

// RunMap guarda los resultados de las simulaciones que corrió el servidor, por id.
type RunMap struct {
	mx sync.RWMutex
	M  map[string]*models.Result
}

func NewRunMap() *RunMap {
	return &RunMap{M: make(map[string]*models.Result)}
}

// Add le asigna un id nuevo al resultado y lo guarda.
func (rMap *RunMap) Add(result *models.Result) string {
	id := uuid.NewString()
	result.ID = id

	rMap.mx.Lock()
	rMap.M[id] = result
	rMap.mx.Unlock()

	slog.Debug(fmt.Sprintf("Corrida %s guardada (%s)", id, result.Policy))
	return id
}

func (rMap *RunMap) Get(id string) (*models.Result, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: id %q inválido", ErrRunNotFound, id)
	}

	rMap.mx.RLock()
	result, found := rMap.M[id]
	rMap.mx.RUnlock()

	if !found {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	return result, nil
}

func (rMap *RunMap) Delete(id string) *models.Result {
	rMap.mx.Lock()
	result := rMap.M[id]
	delete(rMap.M, id)
	rMap.mx.Unlock()

	return result
}

// GetAll devuelve los resultados ordenados por id.
func (rMap *RunMap) GetAll() []*models.Result {
	rMap.mx.RLock()
	defer rMap.mx.RUnlock()

	results := make([]*models.Result, 0, len(rMap.M))
	for _, result := range rMap.M {
		results = append(results, result)
	}
	slices.SortFunc(results, func(a, b *models.Result) int {
		return strings.Compare(a.ID, b.ID)
	})
	return results
}

func (rMap *RunMap) Size() int {
	rMap.mx.RLock()
	defer rMap.mx.RUnlock()

	return len(rMap.M)
}
