/*
The reducer turns a set of IPv4 addresses and CIDR ranges into a minimal set of networks in which no
entry duplicates, contains, is contained by, or overlaps another entry.
Larger networks are processed first, so a single pass is enough to absorb all of their subnets.
*/
package reducer
