// Package digest computes stable fingerprints of target definitions.
package digest

import (
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/msb/internal/core/domain"
	"go.trai.ch/msb/internal/core/ports"
)

var _ ports.Fingerprinter = (*Fingerprinter)(nil)

// Fingerprinter hashes target definitions with XXHash.
type Fingerprinter struct{}

// NewFingerprinter creates a new Fingerprinter.
func NewFingerprinter() *Fingerprinter {
	return &Fingerprinter{}
}

// Fingerprint returns the hex XXHash of the target's attributes and tasks.
// Whether the target was imported does not contribute to the digest.
func (f *Fingerprinter) Fingerprint(target *domain.Target) string {
	hasher := xxhash.New()

	f.hashTarget(target, hasher)
	for task := range target.Tasks() {
		f.hashTask(task, hasher)
	}

	return fmt.Sprintf("%016x", hasher.Sum64())
}

func (f *Fingerprinter) hashTarget(target *domain.Target, hasher *xxhash.Digest) {
	writeField(hasher, target.Name())
	writeField(hasher, target.Condition())
	writeField(hasher, target.DependsOnTargets())
	writeField(hasher, target.Inputs())
	writeField(hasher, target.Outputs())
	_, _ = hasher.Write([]byte{0}) // Section separator
}

// hashTask hashes the task name, reserved attributes, parameters in
// document order and output declarations.
func (f *Fingerprinter) hashTask(task *domain.BuildTask, hasher *xxhash.Digest) {
	writeField(hasher, task.Name())
	writeField(hasher, task.Condition())
	writeField(hasher, strconv.FormatBool(task.ContinueOnError()))

	for _, name := range task.ParameterNames() {
		_, _ = hasher.WriteString(name)
		_, _ = hasher.Write([]byte{'='})
		writeField(hasher, task.ParameterValue(name))
	}
	_, _ = hasher.Write([]byte{0})

	for _, out := range task.Outputs() {
		writeField(hasher, out.TaskParameter)
		writeField(hasher, out.ItemName)
		writeField(hasher, out.PropertyName)
	}
	_, _ = hasher.Write([]byte{0})
}

func writeField(hasher *xxhash.Digest, s string) {
	_, _ = hasher.WriteString(s)
	_, _ = hasher.Write([]byte{0})
}
