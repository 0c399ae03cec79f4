package testutil

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"github.com/hupe1980/neodb/codec"
	"github.com/hupe1980/neodb/neo"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns, as a float64, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Objects generates n synthetic NEO objects with unique designations.
// The unknown fields follow a fixed pattern so callers can predict
// catalog statistics from n alone: every third object (i%3 == 0) is
// named, every second (i%2 == 0) has a known diameter and every
// seventh (i%7 == 0) is flagged hazardous. Every fifth designation is
// provisional ("2008 QV4"-style), the rest are numbered.
func (r *RNG) Objects(n int) []*neo.Object {
	r.mu.Lock()
	defer r.mu.Unlock()

	objects := make([]*neo.Object, n)

	for i := range n {
		designation := strconv.Itoa(1000 + i)
		if i%5 == 4 {
			designation = fmt.Sprintf("%d %c%c%d",
				1990+r.rand.Intn(40),
				'A'+rune(r.rand.Intn(25)),
				'A'+rune(r.rand.Intn(25)),
				i,
			)
		}

		name := ""
		if i%3 == 0 {
			name = fmt.Sprintf("Asteroid %d", i)
		}

		diameter := math.NaN()
		if i%2 == 0 {
			diameter = 0.01 + r.rand.Float64()*9.99
		}

		obj, err := neo.NewObject(designation, name, diameter, i%7 == 0)
		if err != nil {
			panic(fmt.Sprintf("testutil: generated invalid object: %v", err))
		}
		objects[i] = obj
	}

	return objects
}

// Approaches generates perObject close approaches for every object.
// Approach times are spread over 1900-2100 at minute precision,
// distances over [0, 0.5) au and velocities over [5, 40) km/s.
// missingRate is the independent probability that the time, distance
// or velocity of an approach is unknown (0.05 = 5% missing).
func (r *RNG) Approaches(objects []*neo.Object, perObject int, missingRate float64) []*neo.Approach {
	r.mu.Lock()
	defer r.mu.Unlock()

	approaches := make([]*neo.Approach, 0, len(objects)*perObject)

	for _, obj := range objects {
		for range perObject {
			t := r.timeLocked()
			if r.rand.Float64() < missingRate {
				t = time.Time{}
			}

			distance := r.rand.Float64() * 0.5
			if r.rand.Float64() < missingRate {
				distance = math.NaN()
			}

			velocity := 5 + r.rand.Float64()*35
			if r.rand.Float64() < missingRate {
				velocity = math.NaN()
			}

			ap, err := neo.NewApproach(obj.Designation, t, distance, velocity)
			if err != nil {
				panic(fmt.Sprintf("testutil: generated invalid approach: %v", err))
			}
			approaches = append(approaches, ap)
		}
	}

	return approaches
}

// UnresolvedApproaches generates n approaches whose designations never
// collide with the Objects scheme, for exercising approaches without a
// matching catalog object.
func (r *RNG) UnresolvedApproaches(n int) []*neo.Approach {
	r.mu.Lock()
	defer r.mu.Unlock()

	approaches := make([]*neo.Approach, n)

	for i := range n {
		ap, err := neo.NewApproach(
			fmt.Sprintf("1900 XZ%d", i),
			r.timeLocked(),
			r.rand.Float64()*0.5,
			5+r.rand.Float64()*35,
		)
		if err != nil {
			panic(fmt.Sprintf("testutil: generated invalid approach: %v", err))
		}
		approaches[i] = ap
	}

	return approaches
}

// timeLocked returns a random UTC time in [1900, 2100) at minute
// precision. The caller must hold the lock.
func (r *RNG) timeLocked() time.Time {
	return time.Date(
		1900+r.rand.Intn(200),
		time.Month(1+r.rand.Intn(12)),
		1+r.rand.Intn(28),
		r.rand.Intn(24),
		r.rand.Intn(60),
		0, 0, time.UTC,
	)
}

// ObjectsCSV renders objects in the neos.csv input format. Unknown
// diameters render as empty cells, unnamed objects as empty names and
// hazardous flags as "Y"/"N".
func ObjectsCSV(objects []*neo.Object) []byte {
	var buf bytes.Buffer

	cw := csv.NewWriter(&buf)
	_ = cw.Write([]string{"pdes", "name", "diameter", "pha"})

	for _, obj := range objects {
		diameter := ""
		if obj.DiameterKnown() {
			diameter = strconv.FormatFloat(obj.Diameter, 'f', -1, 64)
		}

		pha := "N"
		if obj.Hazardous {
			pha = "Y"
		}

		_ = cw.Write([]string{obj.Designation, obj.Name, diameter, pha})
	}

	cw.Flush()

	return buf.Bytes()
}

// ApproachesJSON renders approaches in the cad.json input envelope.
// Unknown times, distances and velocities render as JSON nulls, the
// way the upstream feed reports them.
func ApproachesJSON(approaches []*neo.Approach) []byte {
	rows := make([][]any, len(approaches))

	for i, ap := range approaches {
		var cd, dist, vel any

		if ap.TimeKnown() {
			cd = ap.Time.Format(neo.CalendarLayout)
		}
		if !math.IsNaN(ap.Distance) {
			dist = strconv.FormatFloat(ap.Distance, 'f', -1, 64)
		}
		if !math.IsNaN(ap.Velocity) {
			vel = strconv.FormatFloat(ap.Velocity, 'f', -1, 64)
		}

		rows[i] = []any{ap.Designation, cd, dist, vel}
	}

	doc := map[string]any{
		"count":  strconv.Itoa(len(approaches)),
		"fields": []string{"des", "cd", "dist", "v_rel"},
		"data":   rows,
	}

	data, err := codec.Default.Marshal(doc)
	if err != nil {
		panic(fmt.Sprintf("testutil: failed to render cad.json: %v", err))
	}

	return data
}
