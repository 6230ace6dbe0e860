package dice

import "go.uber.org/zap"

// Roller wraps a Source and logger to provide logged dice rolling.
// All rolls are logged at debug level with label, dice values, and total.
//
// A Roller (and its Source) must be owned by exactly one combat engine;
// see the ownership note on Source.
type Roller struct {
	src    Source
	logger *zap.Logger
}

// NewRoller creates a Roller that rolls with src and logs each roll to logger.
//
// Precondition: src and logger must be non-nil.
func NewRoller(src Source, logger *zap.Logger) *Roller {
	return &Roller{src: src, logger: logger}
}

// RollSingle rolls one die with the given label and logs the result.
//
// Postcondition: result.Die2 == 0 and result.Total == result.Die1 in [1, Sides].
func (r *Roller) RollSingle(label string) DiceRoll {
	result := Single(r.src, label)
	r.log(result)
	return result
}

// RollDouble rolls two dice with the given label and logs the result.
//
// Postcondition: result.Total == result.Die1 + result.Die2, in [2, 2*Sides].
func (r *Roller) RollDouble(label string) DiceRoll {
	result := Double(r.src, label)
	r.log(result)
	return result
}

func (r *Roller) log(result DiceRoll) {
	r.logger.Debug("dice roll",
		zap.String("label", result.Label),
		zap.Int("die1", result.Die1),
		zap.Int("die2", result.Die2),
		zap.Int("total", result.Total),
	)
}
