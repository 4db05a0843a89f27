package backup

import (
	"context"
	"log"
	"time"

	"nlt_server_go/storage"
)

// Retention tiers. During the week snapshots accumulate; on Mondays the
// previous week collapses down to its Sunday snapshot, on the first of the
// month the previous month collapses down to its first-of-month snapshot,
// and anything older than maxAgeDays goes unconditionally.
const (
	weeklyWindowDays  = 8
	monthlyWindowDays = 31
	maxAgeDays        = 90
)

// ComputeFilesToDelete decides which snapshots are safe to delete at the
// given instant. Names that do not decode are not candidates and are left
// alone. The result is a deduplicated union of all matched rules, in
// listing order.
func (s *Service) ComputeFilesToDelete(snapshots []storage.ObjectInfo, now time.Time) []string {
	var toDelete []string
	seen := map[string]bool{}

	for _, snapshot := range snapshots {
		fileInstant, err := DecodeSnapshotName(s.Prefix, snapshot.Name)
		if err != nil {
			continue
		}

		ageDays := int(now.Sub(fileInstant) / (24 * time.Hour))

		remove := false
		// Weekly: after the week rolls over, keep only the Sunday snapshot
		// of the previous week. Files aged <= 1 day are never touched.
		if now.Weekday() == time.Monday &&
			ageDays > 1 && ageDays <= weeklyWindowDays &&
			fileInstant.Weekday() != time.Sunday {
			remove = true
		}
		// Monthly: after the month rolls over, keep only the
		// first-of-month snapshot of the previous month.
		if now.Day() == 1 &&
			ageDays > 1 && ageDays <= monthlyWindowDays &&
			fileInstant.Day() != 1 {
			remove = true
		}
		// Hard cutoff, regardless of calendar position.
		if ageDays > maxAgeDays {
			remove = true
		}

		if remove && !seen[snapshot.Name] {
			seen[snapshot.Name] = true
			toDelete = append(toDelete, snapshot.Name)
		}
	}
	return toDelete
}

// RunRetentionPolicy lists snapshots, applies the retention rules and
// deletes the matches in one call. Retention is best-effort maintenance:
// every error is logged and swallowed. Returns the number of deleted
// snapshots.
func (s *Service) RunRetentionPolicy(ctx context.Context, now time.Time) int {
	snapshots, err := s.ListSnapshots(ctx)
	if err != nil {
		log.Printf("retention: %v", err)
		return 0
	}

	toDelete := s.ComputeFilesToDelete(snapshots, now)
	if len(toDelete) == 0 {
		return 0
	}

	if err := s.Store.Delete(ctx, toDelete...); err != nil {
		log.Printf("retention: failed to delete snapshots: %v", err)
		return 0
	}
	log.Printf("retention: deleted %d snapshots", len(toDelete))
	return len(toDelete)
}

// RunScheduledBackup performs the unattended daily backup: skip if a
// snapshot for today's date already exists, otherwise export, upload and
// prune. Manual backups do not go through here and may create several
// snapshots per day. Errors are logged, never propagated.
func (s *Service) RunScheduledBackup(ctx context.Context, now time.Time) {
	todayPrefix := s.Prefix + now.UTC().Format("2006-01-02")
	existing, err := s.Store.List(ctx, todayPrefix, 1)
	if err != nil {
		log.Printf("scheduled backup: failed to check for today's snapshot: %v", err)
		return
	}
	if len(existing) > 0 {
		log.Printf("scheduled backup: snapshot %s already exists, skipping", existing[0].Name)
		return
	}

	doc, err := s.ExportSnapshot()
	if err != nil {
		log.Printf("scheduled backup: %v", err)
		return
	}
	name, err := s.WriteSnapshotFile(ctx, doc)
	if err != nil {
		log.Printf("scheduled backup: %v", err)
		return
	}
	log.Printf("scheduled backup: created %s", name)

	s.RunRetentionPolicy(ctx, now)
}
