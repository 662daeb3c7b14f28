package engine

import (
	"io"
	"log"
	"math/rand"
	"sort"

	"github.com/piwi3910/RoomCraft/internal/model"
)

// GeneticConfig holds parameters for the genetic algorithm optimizer.
type GeneticConfig struct {
	PopulationSize int
	Generations    int
	MutationRate   float64 // chance that a child is mutated at all
	MutationArea   float64 // per-gene chance once a child is mutated
	ChromosomeSize int     // gene count for problems that need one
}

// DefaultGeneticConfig returns the parameters used for room typing.
func DefaultGeneticConfig() GeneticConfig {
	return GeneticConfig{
		PopulationSize: 10,
		Generations:    4000,
		MutationRate:   0.3,
		MutationArea:   0.3,
		ChromosomeSize: 100,
	}
}

// GeneticConfigFrom converts file settings into an optimizer config.
func GeneticConfigFrom(s model.GeneticSettings) GeneticConfig {
	cfg := DefaultGeneticConfig()
	if s.Generations > 0 {
		cfg.Generations = s.Generations
	}
	if s.PopulationSize > 0 {
		cfg.PopulationSize = s.PopulationSize
	}
	cfg.MutationRate = s.MutationRate
	cfg.MutationArea = s.MutationArea
	return cfg
}

// Problem supplies the domain operations the optimizer evolves over.
type Problem[C any] interface {
	RandomChromosome(rng *rand.Rand) C
	// Mutate returns a copy of c where each gene is redrawn with probability area.
	Mutate(c C, area float64, rng *rand.Rand) C
	Crossover(a, b C, rng *rand.Rand) C
	// Fitness scores a chromosome; higher is better.
	Fitness(c C) float64
}

// chromosome pairs a candidate with its cached fitness.
type chromosome[C any] struct {
	genes   C
	fitness float64
}

// GeneticResult is the outcome of one optimizer run.
type GeneticResult[C any] struct {
	Best    C
	Fitness float64
	// History holds the best fitness in the population after each generation.
	History []float64
}

// Genetic evolves chromosomes of a Problem.
type Genetic[C any] struct {
	problem Problem[C]
	config  GeneticConfig
	rng     *rand.Rand
	logger  *log.Logger
}

// NewGenetic creates an optimizer. Populations smaller than two cannot keep
// their best member between generations and are raised to two.
func NewGenetic[C any](problem Problem[C], config GeneticConfig, rng *rand.Rand, logger *log.Logger) *Genetic[C] {
	if config.PopulationSize < 2 {
		config.PopulationSize = 2
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Genetic[C]{problem: problem, config: config, rng: rng, logger: logger}
}

// Run evolves the population for the configured number of generations and
// returns the fittest chromosome.
//
// Each generation a fresh random batch competes with the current population:
// the best half of each survives and random picks from both fill the rest.
// One child is then bred from two rank-weighted parents and replaces the
// weakest member if it is fitter.
func (g *Genetic[C]) Run() GeneticResult[C] {
	population := g.randomPopulation()
	history := make([]float64, 0, g.config.Generations)

	for gen := 0; gen < g.config.Generations; gen++ {
		population = g.nextGeneration(population, g.randomPopulation())

		mother := g.chooseOne(population)
		father := g.chooseOne(population)
		child := g.problem.Crossover(mother.genes, father.genes, g.rng)
		if g.rng.Float64() <= g.config.MutationRate {
			child = g.problem.Mutate(child, g.config.MutationArea, g.rng)
		}
		if fitness := g.problem.Fitness(child); fitness > population[0].fitness {
			population[0] = chromosome[C]{genes: child, fitness: fitness}
		}

		history = append(history, best(population).fitness)
		if (gen+1)%500 == 0 {
			g.logger.Printf("Generation %d: best fitness %.0f", gen+1, history[len(history)-1])
		}
	}

	winner := best(population)
	g.logger.Printf("Genetic search finished after %d generations with fitness %.0f", g.config.Generations, winner.fitness)
	return GeneticResult[C]{Best: winner.genes, Fitness: winner.fitness, History: history}
}

// randomPopulation creates and evaluates PopulationSize random chromosomes.
func (g *Genetic[C]) randomPopulation() []chromosome[C] {
	pop := make([]chromosome[C], g.config.PopulationSize)
	for i := range pop {
		genes := g.problem.RandomChromosome(g.rng)
		pop[i] = chromosome[C]{genes: genes, fitness: g.problem.Fitness(genes)}
	}
	return pop
}

// nextGeneration keeps the best half of both pools and fills the remainder
// with a random sample drawn from their union. The result is sorted by
// ascending fitness, so index 0 is the weakest member.
func (g *Genetic[C]) nextGeneration(current, fresh []chromosome[C]) []chromosome[C] {
	sortAscending(current)
	sortAscending(fresh)

	n := g.config.PopulationSize
	bestCount := n / 2
	next := make([]chromosome[C], 0, n)
	for i := 1; i <= bestCount; i++ {
		next = append(next, current[n-i], fresh[n-i])
	}

	union := make([]chromosome[C], 0, 2*n)
	union = append(union, current...)
	union = append(union, fresh...)
	for _, idx := range g.rng.Perm(len(union))[:n-2*bestCount] {
		next = append(next, union[idx])
	}

	sortAscending(next)
	return next
}

// chooseOne picks a member of an ascending population with probability
// proportional to its rank: index k has weight k+1.
func (g *Genetic[C]) chooseOne(population []chromosome[C]) chromosome[C] {
	n := len(population)
	r := 1 + g.rng.Intn(n*(n+1)/2)
	chosen := 0
	for r > 0 {
		chosen++
		r -= chosen
	}
	return population[chosen-1]
}

func sortAscending[C any](pop []chromosome[C]) {
	sort.SliceStable(pop, func(i, j int) bool {
		return pop[i].fitness < pop[j].fitness
	})
}

func best[C any](pop []chromosome[C]) chromosome[C] {
	b := pop[0]
	for _, c := range pop[1:] {
		if c.fitness > b.fitness {
			b = c
		}
	}
	return b
}
