// Package session holds the login state of the single local user and the
// directory of registered businesses.
//
// State lives in memory and is mirrored to a [store.KeyValueStore] under three
// keys ([AuthKey], [ProfileKey], [SignupsKey]). All mutations are serialized;
// subscribers are notified after every successful one.
package session
