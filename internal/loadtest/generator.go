package loadtest

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

// Generator produces students with varied mark profiles.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator. The same seed yields the same marks.
func NewGenerator(seed uint64) *Generator {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed>>1|1))}
}

// Students generates n students with unique names.
func (g *Generator) Students(n int) []Student {
	students := make([]Student, n)
	for i := range students {
		students[i] = g.student()
	}
	return students
}

// student draws a base level and jitters each subject around it, so a batch
// mixes weak, balanced and strong students.
func (g *Generator) student() Student {
	base := profileLow + g.rng.IntN(profileHigh-profileLow+1)
	return Student{
		Name:      "student-" + uuid.NewString(),
		Math:      g.mark(base),
		Science:   g.mark(base),
		English:   g.mark(base),
		History:   g.mark(base),
		Geography: g.mark(base),
		Computer:  g.mark(base),
	}
}

func (g *Generator) mark(base int) float64 {
	v := base + g.rng.IntN(2*markSpread+1) - markSpread
	return float64(min(max(v, markMin), markMax))
}
