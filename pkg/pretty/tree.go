package pretty

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss/tree"
)

// DirTree renders the contents of dir as an indented tree rooted at
// label. Entries are listed alphabetically, directories expanded
// recursively.
func DirTree(dir, label string) (string, error) {
	root := tree.Root(label + string(filepath.Separator))
	if err := addChildren(root, dir); err != nil {
		return "", err
	}
	return root.String(), nil
}

func addChildren(t *tree.Tree, dir string) error {
	entries, err := os.ReadDir(dir) // sorted by name
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.IsDir() {
			sub := tree.Root(e.Name())
			if err := addChildren(sub, filepath.Join(dir, e.Name())); err != nil {
				return err
			}
			t.Child(sub)
		} else {
			t.Child(e.Name())
		}
	}
	return nil
}
