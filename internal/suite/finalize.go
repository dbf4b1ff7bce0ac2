package suite

import (
	"fmt"

	"github.com/bddtools/bddconv/internal/model"
)

// Finalize assigns the derived fields of a loaded suite tree: IDs in
// the "s1-s2-t3" scheme, dotted long names, recursive test counts, and
// the SETUP/TEARDOWN kinds on fixture keywords. It is idempotent and
// must run before the tree is handed to the converter.
func Finalize(root *model.Suite) {
	finalizeSuite(root, "", "s1")
}

func finalizeSuite(s *model.Suite, parentLongName, id string) {
	s.ID = id
	s.LongName = s.Name
	if parentLongName != "" {
		s.LongName = parentLongName + "." + s.Name
	}

	retagFixture(s.Setup, model.KindSetup)
	retagFixture(s.Teardown, model.KindTeardown)

	count := len(s.Tests)
	for i, child := range s.Suites {
		finalizeSuite(child, s.LongName, fmt.Sprintf("%s-s%d", id, i+1))
		count += child.TestCount
	}
	s.TestCount = count

	for i, test := range s.Tests {
		test.ID = fmt.Sprintf("%s-t%d", id, i+1)
		test.LongName = s.LongName + "." + test.Name
		retagFixture(test.Setup, model.KindSetup)
		retagFixture(test.Teardown, model.KindTeardown)
	}
}

// retagFixture marks a decoded setup/teardown call with its fixture
// kind. The document format writes fixtures as plain calls; their
// position, not their shape, determines the kind.
func retagFixture(kw *model.Keyword, kind model.KeywordKind) {
	if kw != nil {
		kw.Kind = kind
	}
}
