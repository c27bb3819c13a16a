// Package cli provides the blobkeeper command-line front end.
//
// It wires configuration, a slot provider and a records repository into a
// small command set that runs either once from the command line or in an
// interactive REPL:
//
//	blobkeeper -b sqlite -k notes put '{"id":1,"title":"milk"}'
//	blobkeeper -b sqlite -k notes          # starts the REPL
//
// Commands: help, list, get <key>, find <field> <text>, put <json>,
// rm <key>, exit | quit.
//
// put replaces the whole stored document that has the same key; fields left
// out of the new document are dropped, not merged.
//
// Words that start with a dash are read as flags. Put them after "--" to pass
// them to a command:
//
//	blobkeeper -b bolt -- rm -5
package cli
