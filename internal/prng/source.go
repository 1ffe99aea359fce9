package prng

const (
	bigMagic1   = 250 // (M,S) parameters of the first shift-register generator
	smallMagic1 = 103
	bigMagic2   = 521 // (M,S) parameters of the second shift-register generator
	smallMagic2 = 168

	nbit        = 32                       // only (nbit-1) bits of each int32 are used
	bigInteger  = 2147483647                // largest 31-bit integer
	bigFloat    = 2147483647.0              // same, as a float64
	factor      = 4.6566128752457969e-10    // 1 / bigInteger, scales to [0,1)
	multiply    = 16807.0                   // congruential multiplier
	nwarm       = 10000                     // congruential warm-up steps
	defaultRand = 2000                      // default per-refill batch size
)

// config carries construction-time options for a Source.
type config struct {
	nrand int
}

// Option configures a Source at construction time, the same
// functional-options shape lvlath/builder uses for WithSeed/WithRand.
type Option func(*config)

// WithStreamSize overrides the number of doubles regenerated per
// internal refill. Refills carry the shift registers' tail state
// forward, but New discards one full batch as warm-up, so Sources built
// from the same seed with different stream sizes produce differently
// offset sequences. Must be positive.
func WithStreamSize(n int) Option {
	return func(c *config) { c.nrand = n }
}

// Source is a combined shift-register pseudorandom generator producing
// doubles in [0,1), built to an exact, cross-implementation-reproducible
// bit-level contract. A Source is stateful and must not be shared
// across goroutines.
type Source struct {
	nrand int
	w1    []int32 // length bigMagic1+nrand
	w2    []int32 // length bigMagic2+nrand
	batch []float64
	pos   int
}

// New seeds a Source. seed must satisfy 0 < seed < 2^31-1 (ErrBadSeed
// otherwise). Construction: warm a congruential generator for 10000
// steps, fill two working buffers from its output, enforce linear
// independence of the low bit columns, then run one shift-register
// refill per buffer (discarded) before the first draw.
func New(seed int64, opts ...Option) (*Source, error) {
	if seed <= 0 || seed >= bigInteger {
		return nil, ErrBadSeed
	}
	cfg := config{nrand: defaultRand}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.nrand <= 0 {
		return nil, ErrBadStreamSize
	}

	s := &Source{
		nrand: cfg.nrand,
		w1:    make([]int32, bigMagic1+cfg.nrand),
		w2:    make([]int32, bigMagic2+cfg.nrand),
	}

	rmod := float64(seed)
	for i := 0; i < nwarm; i++ {
		rmod, _ = congruentialStep(rmod)
	}
	for i := 0; i < bigMagic1; i++ {
		var ihlp int32
		rmod, ihlp = congruentialStep(rmod)
		s.w1[i] = ihlp
	}
	for i := 0; i < bigMagic2; i++ {
		var ihlp int32
		rmod, ihlp = congruentialStep(rmod)
		s.w2[i] = ihlp
	}

	var imask1 int32 = 1
	var imask2 int32 = bigInteger
	for i := nbit - 2; i > 0; i-- {
		s.w1[i] = (s.w1[i] | imask1) & imask2
		s.w2[i] = (s.w2[i] | imask1) & imask2
		imask2 ^= imask1
		imask1 *= 2
	}
	s.w1[0] = imask1
	s.w2[0] = imask1

	// Warm up the shift registers: run one refill and discard its batch.
	s.refill()
	s.pos = len(s.batch)

	return s, nil
}

// congruentialStep advances the congruential generator by one step from
// rmod, returning the new rmod and the truncated integer output ihlp.
func congruentialStep(rmod float64) (nextRmod float64, ihlp int32) {
	rmod = multiply * rmod
	rmod = rmod - float64(int32(rmod*factor))*bigFloat
	ihlp = int32(rmod + 0.1) // strip roundoff before truncation
	return float64(ihlp), ihlp
}

// shiftRegisterRefill runs one cycle of the shift-register recurrence
// over w (sized bigMagic+nrand), writing nrand new values starting at
// index bigMagic, then copying the trailing bigMagic values back to the
// front so the next refill continues the same sequence.
func shiftRegisterRefill(w []int32, bigMagic, smallMagic, nrand int) {
	ncyc := nrand / smallMagic
	nrest := nrand - smallMagic*ncyc

	ibas1, ibas2, ibas3 := 0, bigMagic-smallMagic, bigMagic
	for icyc := 0; icyc < ncyc; icyc++ {
		for i := 0; i < smallMagic; i++ {
			w[ibas3+i] = w[ibas1+i] ^ w[ibas2+i]
		}
		ibas1 += smallMagic
		ibas2 += smallMagic
		ibas3 += smallMagic
	}
	if nrest > 0 {
		for i := 0; i < nrest; i++ {
			w[ibas3+i] = w[ibas1+i] ^ w[ibas2+i]
		}
	}
	for i := 0; i < bigMagic; i++ {
		w[i] = w[nrand+i]
	}
}

// refill advances both shift registers by one batch and recomputes
// s.batch from their XOR, scaled into [0,1).
func (s *Source) refill() {
	shiftRegisterRefill(s.w1, bigMagic1, smallMagic1, s.nrand)
	shiftRegisterRefill(s.w2, bigMagic2, smallMagic2, s.nrand)

	if cap(s.batch) < s.nrand {
		s.batch = make([]float64, s.nrand)
	} else {
		s.batch = s.batch[:s.nrand]
	}
	for i := 0; i < s.nrand; i++ {
		s.batch[i] = factor * float64(s.w1[i+bigMagic1]^s.w2[i+bigMagic2])
	}
	s.pos = 0
}

// NextUniform returns the next double in [0,1) from the combined
// shift-register stream, refilling the internal batch when exhausted.
func (s *Source) NextUniform() float64 {
	if s.pos >= len(s.batch) {
		s.refill()
	}
	v := s.batch[s.pos]
	s.pos++
	return v
}

// NextIntn draws a uniform integer in [0, n) from NextUniform, matching
// the reference implementation's randomNum: scale to an integer range
// and reduce modulo n. n must be positive.
func (s *Source) NextIntn(n int) int {
	scaled := int64(s.NextUniform() * 10000)
	if scaled < 0 {
		scaled = -scaled
	}
	return int(scaled % int64(n))
}
