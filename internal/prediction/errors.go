package prediction

import "errors"

// ErrModelNotTrained is returned when a prediction is requested before
// any training has happened and no persisted model exists. Predicting
// with an untrained model is a precondition violation, never a default
// value.
var ErrModelNotTrained = errors.New("model not trained")
