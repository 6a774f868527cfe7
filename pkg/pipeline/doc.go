// Package pipeline wires the synthesizer, the markup compiler and a
// rendering backend into the dataset workflows: render one layout file,
// render several, write random layout fixtures, or produce a full dataset of
// fixtures plus images.
//
// Every unit of work (one layout) either completes or fails as a whole. By
// default the first failure stops the run; WithContinueOnError logs failures,
// keeps going and returns the joined errors at the end.
package pipeline
