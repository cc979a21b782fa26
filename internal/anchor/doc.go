/*
Package anchor provides the stable identifiers that link document sections
together, based on the canonical format `<kind>_<name>`.

Three kinds exist: `pkg`, `exec` and `launch`. The identifier only depends on
the entity kind and name, never on where the section ends up in the final
document, so inline references can be built before (or without) the target
being rendered. The format is shared with documents produced by earlier
tooling and must not change.
*/
package anchor
