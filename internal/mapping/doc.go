// Package mapping holds class name mappings used by the remapper.
//
// Names are internal class names: '/' separates packages and '$' separates
// inner classes, e.g. net/obf/A$B. A Set maps obfuscated names to their
// deobfuscated form and resolves inner classes of mapped outer classes.
// Sets are read from SRG, TSRG or TOML files and can be cached on disk.
package mapping
