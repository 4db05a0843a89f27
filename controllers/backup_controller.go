package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"nlt_server_go/backup"
	"nlt_server_go/models"

	"github.com/gorilla/mux"
)

var backupService *backup.Service

// SetBackupService installs the backup engine used by the handlers below.
// Called once from main during wiring.
func SetBackupService(service *backup.Service) {
	backupService = service
}

// CreateBackupHandler runs a manual export and uploads the snapshot.
// Unlike the scheduled path this may create several snapshots per day.
// POST /api/backups (admin)
func CreateBackupHandler(w http.ResponseWriter, r *http.Request) {
	doc, err := backupService.ExportSnapshot()
	if err != nil {
		log.Printf("backup: %v", err)
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	name, err := backupService.WriteSnapshotFile(r.Context(), doc)
	if err != nil {
		log.Printf("backup: %v", err)
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{"name": name})
}

// ListBackupsHandler returns the snapshot files, newest first.
// GET /api/backups (admin)
func ListBackupsHandler(w http.ResponseWriter, r *http.Request) {
	snapshots, err := backupService.ListSnapshots(r.Context())
	if err != nil {
		log.Printf("backup: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to list snapshots.")
		return
	}
	respondJSON(w, http.StatusOK, snapshots)
}

// DownloadBackupHandler streams one snapshot document to the client.
// GET /api/backups/{name} (admin)
func DownloadBackupHandler(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	doc, err := backupService.DownloadSnapshot(r.Context(), name)
	if err != nil {
		log.Printf("backup: %v", err)
		respondError(w, http.StatusNotFound, "Snapshot not found.")
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename=\""+name+"\"")
	json.NewEncoder(w).Encode(doc)
}

// DeleteBackupHandler removes one snapshot.
// DELETE /api/backups/{name} (admin)
func DeleteBackupHandler(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	if err := backupService.Store.Delete(r.Context(), name); err != nil {
		log.Printf("backup: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to delete snapshot.")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// RestoreBackupHandler replays an uploaded backup document into the
// database. Destructive and not atomic across tables; the client warns
// the user before calling this.
// POST /api/backups/restore (admin)
func RestoreBackupHandler(w http.ResponseWriter, r *http.Request) {
	var doc models.BackupDocument
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid backup document: "+err.Error())
		return
	}
	defer r.Body.Close()

	if err := backupService.RestoreSnapshot(&doc); err != nil {
		log.Printf("backup: %v", err)
		status := http.StatusInternalServerError
		if err == backup.ErrInvalidFormat {
			status = http.StatusBadRequest
		}
		respondError(w, status, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "restored"})
}

// RestoreRemoteBackupHandler downloads a named snapshot and replays it.
// POST /api/backups/{name}/restore (admin)
func RestoreRemoteBackupHandler(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	doc, err := backupService.DownloadSnapshot(r.Context(), name)
	if err != nil {
		log.Printf("backup: %v", err)
		respondError(w, http.StatusNotFound, "Snapshot not found.")
		return
	}

	if err := backupService.RestoreSnapshot(doc); err != nil {
		log.Printf("backup: %v", err)
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "restored", "name": name})
}

// RunRetentionHandler applies the retention policy immediately.
// POST /api/backups/retention/run (admin)
func RunRetentionHandler(w http.ResponseWriter, r *http.Request) {
	deleted := backupService.RunRetentionPolicy(r.Context(), time.Now().UTC())
	respondJSON(w, http.StatusOK, map[string]int{"deleted": deleted})
}
