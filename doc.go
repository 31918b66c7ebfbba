// Package rolodex is a contact store with prefix autocompletion.
//
// Contacts live in an in-memory prefix index (package trie) and are persisted
// as a whole to a JSON file, a YAML file or a BadgerDB directory. A Book ties
// an index to its repository for the length of a session:
//
//	book, report, err := rolodex.Open(ctx, "contacts.json")
//	if err != nil {
//	    // report.Status is LoadStatusParseError; book is usable but empty
//	}
//	defer book.Close()
//
//	book.Add("Ananya", "111")
//	matches, err := book.Suggest("an")
//	if errors.Is(err, rolodex.ErrNoSuggestions) {
//	    // nothing starts with "an"
//	}
//	err = book.Save(ctx)
//
// LoadFromFile and SaveToFile expose the same persistence without a session.
package rolodex
