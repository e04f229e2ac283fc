package genetic

import (
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

// Parameters of a genetic run. They are fixed for the run's lifetime.
type Parameters struct {
	PopulationSize uint64        `env:"POPULATION_SIZE" envDefault:"100" validate:"min=2,even"`
	Generations    uint64        `env:"GENERATIONS" envDefault:"500" validate:"min=1"`
	MutationRate   float64       `env:"MUTATION_RATE" envDefault:"0.1" validate:"min=0,max=1"`
	CrossoverRate  float64       `env:"CROSSOVER_RATE" envDefault:"1" validate:"min=0,max=1"`
	MaxAttempts    uint64        `env:"MAX_ATTEMPTS" envDefault:"1000" validate:"min=1"`
	EliteCount     uint64        `env:"ELITE_COUNT" envDefault:"0" validate:"ltfield=PopulationSize"`
	Workers        int           `env:"WORKERS" validate:"min=0"` // Zero means runtime.NumCPU()
	Seed           uint64        `env:"SEED" envDefault:"0"`      // Zero means a random seed
	ReportInterval uint64        `env:"REPORT_INTERVAL" envDefault:"50"`
	Deadline       time.Duration `env:"DEADLINE" envDefault:"0s"` // Zero means no wall-clock limit
	RepairRooms    bool          `env:"REPAIR_ROOMS" envDefault:"false"`

	Weights Weights `envPrefix:"WEIGHT_"`
}

// Weights of the soft penalties in the score. Hard violations always weigh one.
type Weights struct {
	BackToBack uint64 `env:"BACK_TO_BACK" envDefault:"1"`
	Scatter    uint64 `env:"SCATTER" envDefault:"1"`
	TeacherGap uint64 `env:"TEACHER_GAP" envDefault:"1"`
}

const EnvPrefix = "GA_"

var validate = newValidator()

func newValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterValidation("even", func(field validator.FieldLevel) bool {
		return field.Field().Uint()%2 == 0
	})
	return validate
}

func DefaultParameters() Parameters {
	return Parameters{
		PopulationSize: 100,
		Generations:    500,
		MutationRate:   0.1,
		CrossoverRate:  1,
		MaxAttempts:    1000,
		ReportInterval: 50,
		Weights: Weights{
			BackToBack: 1,
			Scatter:    1,
			TeacherGap: 1,
		},
	}
}

// ParametersFromEnv reads GA_-prefixed environment variables on top of the defaults.
func ParametersFromEnv() (Parameters, error) {
	parameters := Parameters{}
	if err := env.ParseWithOptions(&parameters, env.Options{Prefix: EnvPrefix}); err != nil {
		aggErr := env.AggregateError{}
		if ok := errors.As(err, &aggErr); ok {
			// Only the first error keeps the message readable
			return Parameters{}, aggErr.Errors[0]
		}
		return Parameters{}, err
	}
	return parameters, nil
}

func (parameters Parameters) Validate() error {
	if err := validate.Struct(parameters); err != nil {
		return fmt.Errorf("invalid parameters: %w", err)
	}
	return nil
}

func (parameters Parameters) workers() int {
	if parameters.Workers <= 0 {
		return runtime.NumCPU()
	}
	return parameters.Workers
}
