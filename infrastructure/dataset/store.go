package dataset

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/mohdanas86/hotelRevnue/internal/config"
	"github.com/mohdanas86/hotelRevnue/internal/domain"
)

// Store memoiza o dataset carregado. O dataset é carregado uma única vez
// por processo e compartilhado somente-leitura; Refresh troca o valor
// inteiro de forma atômica.
type Store interface {
	Load() (*domain.Dataset, error)
	Refresh() (*domain.Dataset, error)
}

type CSVStore struct {
	cfg config.Dataset

	mu      sync.RWMutex
	dataset *domain.Dataset
}

// NewStore cria o store de dataset a partir da configuração.
func NewStore(cfg config.Dataset) *CSVStore {
	return &CSVStore{cfg: cfg}
}

// Load retorna o dataset memoizado, carregando a fonte na primeira chamada.
func (s *CSVStore) Load() (*domain.Dataset, error) {
	s.mu.RLock()
	if s.dataset != nil {
		defer s.mu.RUnlock()
		return s.dataset, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	// Outra goroutine pode ter carregado enquanto esperávamos o lock
	if s.dataset != nil {
		return s.dataset, nil
	}

	dataset, err := s.loadSource()
	if err != nil {
		return nil, err
	}

	s.dataset = dataset
	return s.dataset, nil
}

// Refresh recarrega a fonte e substitui o dataset memoizado por inteiro.
func (s *CSVStore) Refresh() (*domain.Dataset, error) {
	dataset, err := s.loadSource()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.dataset = dataset
	s.mu.Unlock()

	logrus.WithField("records", dataset.Len()).Info("dataset: recarregado")
	return dataset, nil
}

func (s *CSVStore) loadSource() (*domain.Dataset, error) {
	if _, err := os.Stat(s.cfg.CSVPath); os.IsNotExist(err) {
		logrus.WithFields(logrus.Fields{
			"path": s.cfg.CSVPath,
			"days": s.cfg.SyntheticDays,
		}).Warn("dataset: fonte ausente, usando dados sintéticos")

		return Synthetic(s.cfg.SyntheticDays, s.cfg.SyntheticSeed), nil
	}

	return LoadCSV(s.cfg.CSVPath)
}
