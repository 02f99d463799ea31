// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"

	"laser-defense/internal/defs"
)

// PRNGService — это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
type PRNGService struct {
	rng  *rand.Rand
	seed int64
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the seed the service was created with.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Range returns a uniform value in [lo, hi).
func (s *PRNGService) Range(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// Sign returns -1 or +1 with equal probability.
func (s *PRNGService) Sign() float64 {
	if s.rng.Float64() < 0.5 {
		return -1
	}
	return 1
}

// Chance returns true with probability p.
func (s *PRNGService) Chance(p float64) bool {
	return s.rng.Float64() < p
}

// ChooseSpawn picks an enemy type for the given wave with a single roll
// against the cumulative thresholds of table. A roll past every threshold
// returns fallback.
func (s *PRNGService) ChooseSpawn(table []defs.SpawnRatio, wave int, fallback defs.EnemyType) defs.EnemyType {
	return PickCumulative(table, wave, s.Float64(), fallback)
}

// PickCumulative is the deterministic half of ChooseSpawn.
func PickCumulative(table []defs.SpawnRatio, wave int, roll float64, fallback defs.EnemyType) defs.EnemyType {
	threshold := 0.0
	for _, entry := range table {
		threshold += entry.At(wave)
		if roll < threshold {
			return entry.Type
		}
	}
	return fallback
}
