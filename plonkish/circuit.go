package plonkish

// Circuit is the contract every provable statement implements for the
// backend. C is the circuit's configuration type, produced once by Configure
// and shared by every synthesis.
//
// Configure must not read witness data: it is called on a witness-erased
// clone for shape analysis, and the backend preprocessing derived from it is
// reused across proofs. Synthesize must lay out identical regions, gates and
// copy constraints for any witness values; only cell contents may differ.
type Circuit[C any] interface {
	// WithoutWitnesses returns a clone of the circuit with all witness
	// values erased but the shape parameters kept.
	WithoutWitnesses() Circuit[C]
	// Configure declares the circuit's columns and gates on meta and
	// returns the configuration every synthesis will use. It fails only on
	// shape errors.
	Configure(meta *ConstraintSystem) (C, error)
	// Synthesize assigns the witness into the table through the layouter.
	Synthesize(cfg C, ly *Layouter) error
}
