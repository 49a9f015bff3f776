// Package archive serves catalog data from a zip archive of YAML records.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"sync"

	"github.com/andrescamacho/eveindustry-go/internal/adapters/recordyaml"
	"github.com/andrescamacho/eveindustry-go/internal/domain/catalog"
	"github.com/andrescamacho/eveindustry-go/internal/domain/record"
	"github.com/andrescamacho/eveindustry-go/internal/infrastructure/cache"
)

const decryptorsEntry = "blueprint/decryptors.yaml"

// ZipCatalog resolves catalog entries from an archive laid out as
// blueprint/<id>.yaml, reaction/<id>.yaml, schematic/<id>.yaml and
// refine/<itemid>.yaml, plus blueprint/decryptors.yaml listing every
// decryptor. Entries are parsed on first use and memoized. Missing or
// unreadable entries are reported as not found.
type ZipCatalog struct {
	reader *zip.ReadCloser
	files  map[string]*zip.File

	blueprints *cache.Cache[int, *catalog.Blueprint]
	reactions  *cache.Cache[int, *catalog.Reaction]
	schematics *cache.Cache[int, *catalog.Schematic]
	refinables *cache.Cache[int, *catalog.Refinable]

	decryptorsOnce sync.Once
	decryptors     map[int]*catalog.Decryptor
}

// Open opens the archive at path
func Open(path string) (*ZipCatalog, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog archive %s: %w", path, err)
	}

	c := &ZipCatalog{
		reader: r,
		files:  make(map[string]*zip.File, len(r.File)),
	}
	for _, f := range r.File {
		c.files[f.Name] = f
	}

	c.blueprints = cache.New(entryResolver(c, "blueprint", catalog.BlueprintFromRecord))
	c.reactions = cache.New(entryResolver(c, "reaction", catalog.ReactionFromRecord))
	c.schematics = cache.New(entryResolver(c, "schematic", catalog.SchematicFromRecord))
	c.refinables = cache.New(entryResolver(c, "refine", catalog.RefinableFromRecord))
	return c, nil
}

// Close releases the archive
func (c *ZipCatalog) Close() error {
	return c.reader.Close()
}

// Blueprint implements catalog.Catalog
func (c *ZipCatalog) Blueprint(id int) (*catalog.Blueprint, bool) {
	return c.blueprints.Get(id)
}

// Reaction implements catalog.Catalog
func (c *ZipCatalog) Reaction(id int) (*catalog.Reaction, bool) {
	return c.reactions.Get(id)
}

// Schematic implements catalog.Catalog
func (c *ZipCatalog) Schematic(id int) (*catalog.Schematic, bool) {
	return c.schematics.Get(id)
}

// Refinable implements catalog.Catalog
func (c *ZipCatalog) Refinable(itemID int) (*catalog.Refinable, bool) {
	return c.refinables.Get(itemID)
}

// Decryptor implements catalog.Catalog. The decryptor list is read once.
func (c *ZipCatalog) Decryptor(id int) (*catalog.Decryptor, bool) {
	c.decryptorsOnce.Do(c.loadDecryptors)
	d, ok := c.decryptors[id]
	return d, ok
}

func (c *ZipCatalog) loadDecryptors() {
	c.decryptors = make(map[int]*catalog.Decryptor)
	_, obj, err := c.readEntry(decryptorsEntry)
	if err != nil {
		return
	}
	for _, rec := range obj.Objects("decryptor") {
		d, err := catalog.DecryptorFromRecord(rec)
		if err != nil {
			continue
		}
		c.decryptors[d.ID] = d
	}
}

// entryResolver builds a cache resolver reading <dir>/<id>.yaml
func entryResolver[T any](c *ZipCatalog, dir string, parse func(*record.Object) (*T, error)) cache.Resolver[int, *T] {
	return func(id int) (*T, bool) {
		_, obj, err := c.readEntry(fmt.Sprintf("%s/%d.yaml", dir, id))
		if err != nil {
			return nil, false
		}
		v, err := parse(obj)
		if err != nil {
			return nil, false
		}
		return v, true
	}
}

func (c *ZipCatalog) readEntry(name string) (string, *record.Object, error) {
	f, ok := c.files[name]
	if !ok {
		return "", nil, fmt.Errorf("entry %s not found", name)
	}
	rc, err := f.Open()
	if err != nil {
		return "", nil, fmt.Errorf("failed to open entry %s: %w", name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read entry %s: %w", name, err)
	}
	return recordyaml.Unmarshal(data)
}
