package sample

// Fixed keys of the sample dictionary.
const (
	// KeyImage holds the input image as a CxHxW float32 array in [0, 1].
	KeyImage = "image"
	// KeyMask holds a dense segmentation target as an HxW int64 array of
	// class ids.
	KeyMask = "mask"
	// KeyLabel holds a scalar classification target as an int64 array of
	// shape [1].
	KeyLabel = "label"
	// KeyPrediction is never produced by a dataset. Callers may add it to a
	// sample before plotting to compare a model output against the target.
	KeyPrediction = "prediction"
)

// Sample maps fixed keys to numeric arrays. Each retrieval builds a new map
// with freshly decoded arrays, so mutating a sample never affects the dataset
// or other samples.
type Sample map[string]*Array

// Transform rewrites a sample, e.g. for augmentation or normalization. It is
// applied as the final step of retrieval. A transform may mutate its input
// and return it, or return a new sample.
type Transform func(Sample) Sample

// Clone returns a deep copy of the sample.
func (s Sample) Clone() Sample {
	out := make(Sample, len(s))
	for k, v := range s {
		out[k] = v.Clone()
	}
	return out
}

// Keys returns the keys present in the sample, in unspecified order.
func (s Sample) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	return keys
}
