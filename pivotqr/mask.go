package pivotqr

// maskRegion applies the region constraint to one iteration's candidate norms.
//
// norms[c] is the Euclidean norm of trailing column c at iteration j, so
// norms[c] belongs to the location whose original index is perm[j+c].
//
// Rule:
//   - while j < nConstrained (quota not yet filled): zero every candidate whose
//     original index is outside the region, forcing the pivot into it;
//   - afterwards: zero every candidate inside the region, keeping the rest of
//     the ranking out of it.
//
// The function mutates only the caller-owned norms scratch and touches nothing
// else; positions before j are already fixed and are not part of norms.
// Complexity: O(len(norms)).
func maskRegion(region map[int]struct{}, norms []float64, perm []int, j, nConstrained int) {
	inQuota := j < nConstrained
	for c := range norms {
		_, inRegion := region[perm[j+c]]
		if inQuota != inRegion {
			norms[c] = 0
		}
	}
}
