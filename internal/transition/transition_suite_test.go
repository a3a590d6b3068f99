package transition_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestTransition(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Transition Suite")
}
