// Package analysers turns document text into the terms counted by the vectoriser.
package analysers

import (
	"github.com/custodia-labs/docrec/internal/core/ports/driven"
)

// Ensure Pipeline implements the interface.
var _ driven.TextAnalyser = (*Pipeline)(nil)

// Pipeline chains multiple AnalysisStages and runs them in order.
type Pipeline struct {
	stages []driven.AnalysisStage
}

// NewPipeline creates a new analysis pipeline with the given stages.
// Stages are executed in the order provided.
func NewPipeline(stages ...driven.AnalysisStage) *Pipeline {
	return &Pipeline{
		stages: stages,
	}
}

// Analyse runs the text through all stages in order.
// The first stage receives nil terms and should create them.
func (p *Pipeline) Analyse(text string) []string {
	var terms []string
	for _, stage := range p.stages {
		terms = stage.Process(text, terms)
	}
	return terms
}

// Add appends a stage to the pipeline.
func (p *Pipeline) Add(stage driven.AnalysisStage) {
	p.stages = append(p.stages, stage)
}

// Len returns the number of stages in the pipeline.
func (p *Pipeline) Len() int {
	return len(p.stages)
}

// Names returns the stage names in execution order.
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.stages))
	for i, stage := range p.stages {
		names[i] = stage.Name()
	}
	return names
}
