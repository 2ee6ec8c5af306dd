package model

// UpdateWeights applies one online update and returns a new weight vector.
//
// Feature weights move by eta*(target-output)*input. The final slot is the
// bias and moves by (target-output) alone, with neither eta nor the bias
// input applied.
func UpdateWeights(weights []float64, eta, target, output float64, inputs []float64) ([]float64, error) {
	if len(weights) != len(inputs) || len(weights) == 0 {
		return nil, &DimensionError{Op: "update", Weights: len(weights), Inputs: len(inputs)}
	}
	diff := target - output
	end := len(weights) - 1
	updated := make([]float64, len(weights))
	for i := 0; i < end; i++ {
		updated[i] = weights[i] + (eta*diff)*inputs[i]
	}
	updated[end] = weights[end] + diff
	return updated, nil
}
