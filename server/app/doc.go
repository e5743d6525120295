// app implements burn mode: per-user ephemeral message retention.
//
// *. A user opts in with /burn on inside a team. From then on every message
//    they post in that team is captured for later deletion.
// *. A session ends on /burn off or when its maximum duration expires.
//    Either way the captured messages are deleted ("burned") in capture
//    order, after a grace delay and with a pause between deletions.
// *. One session per user across all teams. A team holds at most the
//    configured number of simultaneous sessions.
// *. Deletion is best effort. A message whose deletion fails stays in the
//    ledger and is picked up by the next burn for the same user and team.
//
// Implement notes:
// Use the plugin api for posting/deleting, the sql store only for the
// session and ledger records.
// The scheduler keeps one cancellable timer per session, keyed by
// (user, team). Deactivation cancels the timer before burning, so expiry
// can not post a second notice after a manual burn.
// Recovery runs once in OnActivate: future expiries are re-armed with the
// remaining delay, past ones burn immediately.
package app
