package risk

// Classifier is the trained fraud model collaborator, consumed as an
// opaque binary predictor over an encoded feature vector. A nil
// classifier disables model labeling without affecting the heuristic
// checks.
type Classifier interface {
	Predict(features []float64) (int, error)
}
