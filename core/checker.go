package core

import (
	"bytes"
	"errors"
	"fmt"
	"hash"
	"io"
	"sort"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/smartystreets/logging"

	"github.com/smarty/hpmpack/contracts"
)

// ArchiveChecker confirms that an archive holds exactly the serialized documents and nothing else.
type ArchiveChecker struct {
	hasher func() hash.Hash
	logger *logging.Logger
}

func NewArchiveChecker(hasher func() hash.Hash) *ArchiveChecker {
	return &ArchiveChecker{hasher: hasher}
}

func (this *ArchiveChecker) Verify(archive contracts.ArchiveReader, documents []contracts.Document) error {
	expected := make(map[string][]byte, len(documents))
	for _, document := range documents {
		content, err := Serialize(document.Record)
		if err != nil {
			return fmt.Errorf("serialize %q: %w", document.Path, err)
		}
		expected[document.Path] = content
	}

	seen := make(map[string]struct{}, len(documents))
	for {
		header, err := archive.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if _, found := seen[header.Name]; found {
			return fmt.Errorf("%w: %q", ErrDuplicateEntry, header.Name)
		}
		seen[header.Name] = struct{}{}

		want, found := expected[header.Name]
		if !found {
			return fmt.Errorf("%w: %q", ErrUnexpectedEntry, header.Name)
		}
		reader := NewHashReader(archive, this.hasher())
		actual, err := io.ReadAll(reader)
		if err != nil {
			return fmt.Errorf("read %q: %w", header.Name, err)
		}
		if !bytes.Equal(reader.Sum(nil), this.checksum(want)) {
			return fmt.Errorf("%w: %q\n%s", ErrContentMismatch, header.Name, describeDifference(string(want), string(actual)))
		}
		this.logger.Printf("[INFO] verified %s", header.Name)
	}

	var missing []string
	for path := range expected {
		if _, found := seen[path]; !found {
			missing = append(missing, path)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("%w: %s", ErrMissingEntry, strings.Join(missing, ", "))
	}
	return nil
}

func (this *ArchiveChecker) checksum(content []byte) []byte {
	hasher := this.hasher()
	_, _ = hasher.Write(content)
	return hasher.Sum(nil)
}

func describeDifference(expected, actual string) string {
	differ := diffmatchpatch.New()
	left, right, lines := differ.DiffLinesToChars(expected, actual)
	diffs := differ.DiffCharsToLines(differ.DiffMain(left, right, false), lines)

	builder := new(strings.Builder)
	for _, diff := range diffs {
		prefix := "  "
		switch diff.Type {
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		}
		for _, line := range strings.Split(strings.TrimSuffix(diff.Text, "\n"), "\n") {
			builder.WriteString(prefix)
			builder.WriteString(line)
			builder.WriteString("\n")
		}
	}
	return builder.String()
}

var (
	ErrDuplicateEntry  = errors.New("archive entry appears more than once")
	ErrUnexpectedEntry = errors.New("archive holds an entry that is not in the catalog")
	ErrMissingEntry    = errors.New("archive is missing catalog entries")
	ErrContentMismatch = errors.New("archive entry content differs from the catalog")
)
