package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type SolverParameters struct {
	Title         string  `yaml:"Title"`
	GridSize      int     `yaml:"GridSize"`      // N for the N x N model problem
	Theta         float64 `yaml:"Theta"`         // strength-of-connection threshold
	Omega         float64 `yaml:"Omega"`         // damping parameter
	Tolerance     float64 `yaml:"Tolerance"`     // relative residual tolerance
	MaxIterations int     `yaml:"MaxIterations"` // outer iteration budget
	Smoother      string  `yaml:"Smoother"`      // "chebyshev" or "jacobi"
	CoarseSize    int     `yaml:"CoarseSize"`    // direct-solve threshold
}

func (sp *SolverParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, sp)
}

func (sp *SolverParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", sp.Title)
	fmt.Printf("%8d\t\t= GridSize\n", sp.GridSize)
	fmt.Printf("%8.5f\t\t= Theta\n", sp.Theta)
	fmt.Printf("%8.5f\t\t= Omega\n", sp.Omega)
	fmt.Printf("%8.2e\t\t= Tolerance\n", sp.Tolerance)
	fmt.Printf("%8d\t\t= MaxIterations\n", sp.MaxIterations)
	fmt.Printf("[%s]\t\t\t= Smoother\n", sp.Smoother)
	fmt.Printf("%8d\t\t= CoarseSize\n", sp.CoarseSize)
}
