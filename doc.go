// Package flyweight provides keyed shared-instance caches and dispatching factories.
//
// A Cache builds at most one value per key and hands the same value to every later
// caller, whatever parameters they pass. A Dispatcher maps a closed set of
// discriminants to constructors and fails with ErrUnknownVariant for anything else.
//
// Both are explicitly owned values: create one per application or test, there is no
// package-level registry.
package flyweight
