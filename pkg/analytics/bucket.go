package analytics

// Bucket is the ordinal rating class a review falls into.
type Bucket int

const (
	Low Bucket = iota
	Medium
	High
)

// NumBuckets is the length of every count triple.
const NumBuckets = 3

var bucketNames = [NumBuckets]string{"low", "medium", "high"}

func (b Bucket) String() string {
	if b < Low || b > High {
		return "unknown"
	}
	return bucketNames[b]
}

// ParseBucket maps "low", "medium" or "high" to a Bucket.
func ParseBucket(name string) (Bucket, bool) {
	for i, n := range bucketNames {
		if n == name {
			return Bucket(i), true
		}
	}
	return 0, false
}

// BucketForRating classifies a rating. A rating of exactly 2.5 matches
// neither the low nor the medium condition and lands in High. That looks
// like a slip in the threshold ordering, but existing outputs depend on it.
func BucketForRating(rating float64) Bucket {
	if rating < 2.5 {
		return Low
	}
	if rating > 2.5 && rating <= 3.5 {
		return Medium
	}
	return High
}
