// Package synth generates random layouts of non-overlapping elements for use
// as synthetic ground truth. Placement uses rejection sampling: each element
// is redrawn until its rectangle collides with none of the elements accepted
// before it. The random source is owned by the Synthesizer so runs are
// reproducible from a seed.
package synth
