/*
Package randbox generates random region workloads for orthtree tests and
benchmarks.

Generators are deterministic per seed. The asynchronous Stream variant
broadcasts one generated workload to several consumers, e.g. to feed a
tree under test and a brute-force reference model from the same boxes.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package randbox
