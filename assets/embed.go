package assets

import "embed"

//go:embed decode_catalog.json flashdance_catalog.json anagrams_catalog.json master_words.txt
var FS embed.FS

func DecodeCatalog() ([]byte, error)     { return FS.ReadFile("decode_catalog.json") }
func FlashdanceCatalog() ([]byte, error) { return FS.ReadFile("flashdance_catalog.json") }
func AnagramsCatalog() ([]byte, error)   { return FS.ReadFile("anagrams_catalog.json") }
func MasterWords() ([]byte, error)       { return FS.ReadFile("master_words.txt") }
