package views

// Templates live as string constants so a binary deploy carries everything.
// Styling is deliberately minimal; structure over looks.

const layoutTmpl = `{{define "layout"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}} · GlobeTrotter</title>
<style>
body{font-family:system-ui,sans-serif;margin:0;background:#f3f4f6;color:#111827}
a{color:#4f46e5;text-decoration:none}
.shell{display:flex;min-height:100vh}
aside{width:220px;background:#fff;border-right:1px solid #e5e7eb;padding:20px}
aside h1{font-size:1.2rem;color:#4f46e5;margin:0 0 24px}
aside a{display:block;padding:10px 12px;border-radius:8px;color:#4b5563;margin-bottom:6px}
aside a.active{background:#eef2ff;color:#4f46e5;font-weight:700}
main{flex:1;padding:28px;max-width:960px}
.banner{background:#fee2e2;border:1px solid #fca5a5;color:#dc2626;padding:12px;border-radius:8px;margin-bottom:16px}
.notice{background:#dcfce7;border:1px solid #86efac;color:#166534;padding:12px;border-radius:8px;margin-bottom:16px}
.warn{background:#fef9c3;border:1px solid #fde047;color:#854d0e;padding:10px;border-radius:8px;margin-bottom:12px}
.card{background:#fff;border:1px solid #e5e7eb;border-radius:12px;padding:18px;margin-bottom:16px}
.grid{display:grid;grid-template-columns:repeat(auto-fill,minmax(260px,1fr));gap:16px}
label{display:block;font-size:.85rem;color:#374151;margin:10px 0 4px}
input,select,textarea{width:100%;max-width:420px;padding:8px;border:1px solid #d1d5db;border-radius:8px;box-sizing:border-box}
button,.btn{background:#4f46e5;color:#fff;border:0;padding:10px 18px;border-radius:8px;cursor:pointer}
button.quiet,.btn.quiet{background:#e5e7eb;color:#374151}
button.danger{background:#fef2f2;color:#dc2626;border:1px solid #fee2e2}
.badge{display:inline-block;padding:2px 10px;border-radius:999px;font-size:.75rem;text-transform:capitalize}
.badge.ongoing{background:#dcfce7;color:#166534}
.badge.upcoming{background:#dbeafe;color:#1e40af}
.badge.completed{background:#f3f4f6;color:#6b7280}
table{border-collapse:collapse;width:100%}
td,th{border:1px solid #e5e7eb;padding:6px;vertical-align:top;font-size:.85rem}
.cal-day{min-height:70px}
.cal-today{background:#eef2ff}
.ev{background:#4f46e5;color:#fff;border-radius:4px;padding:1px 4px;font-size:.7rem;margin-top:2px;display:block}
.muted{color:#6b7280;font-size:.9rem}
.stat{display:inline-block;margin-right:28px}
.stat b{display:block;font-size:1.3rem}
</style>
</head>
<body>
<div class="shell">
{{if .UserName}}
<aside>
<h1>🌍 GlobeTrotter</h1>
<a href="/trips" {{if eq .Active "trips"}}class="active"{{end}}>✈️ My Trips</a>
<a href="/calendar" {{if eq .Active "calendar"}}class="active"{{end}}>📅 Calendar</a>
<a href="/activities" {{if eq .Active "discover"}}class="active"{{end}}>🔍 Discover</a>
<a href="/profile" {{if eq .Active "profile"}}class="active"{{end}}>👤 Profile</a>
<form method="post" action="/logout" style="margin-top:30px">
<button class="danger" type="submit">Log Out</button>
</form>
<p class="muted" style="margin-top:12px">{{.UserName}}</p>
</aside>
{{end}}
<main>
{{if .Banner}}<div class="banner">⚠️ {{.Banner}}</div>{{end}}
{{if .Notice}}<div class="notice">{{.Notice}}</div>{{end}}
{{template "content" .}}
</main>
</div>
</body>
</html>{{end}}`

const homeTmpl = `{{define "content"}}
<h1>Plan your next adventure</h1>
<p class="muted">Multi-city itineraries, activity picks and budget estimates in one place.</p>
{{if .UserName}}
<p><a class="btn" href="/trips">Go to my trips</a></p>
{{else}}
<p><a class="btn" href="/login">Sign In</a> &nbsp; <a href="/signup">Join the club</a></p>
{{end}}
{{end}}`

const loginTmpl = `{{define "content"}}
<h1>Welcome back</h1>
<p class="muted">Login to plan your next adventure.</p>
<div class="card" style="max-width:440px">
<form method="post" action="/login">
<label>Email Address</label>
<input type="email" name="email" required placeholder="traveler@example.com" value="{{.Email}}">
<label>Password</label>
<input type="password" name="password" required placeholder="••••••••">
<p><button type="submit">Sign In</button></p>
</form>
<p class="muted">Don't have an account? <a href="/signup">Join the club</a></p>
</div>
{{end}}`

const signupTmpl = `{{define "content"}}
<h1>Create Account</h1>
<div class="card" style="max-width:520px">
<form method="post" action="/signup">
<label>First Name</label><input name="first_name" required>
<label>Last Name</label><input name="last_name" required>
<label>Email Address</label><input type="email" name="email" required value="{{.Email}}">
<label>Password</label><input type="password" name="password" required>
<label>Phone</label><input name="phone">
<label>City</label><input name="city">
<label>Country</label><input name="country">
<label>About You</label><textarea name="additional_info" rows="3"></textarea>
<p><button type="submit">Create Account</button></p>
</form>
<p class="muted">Already a member? <a href="/login">Sign In</a></p>
</div>
{{end}}`

const tripsTmpl = `{{define "content"}}
<h1>My Trips</h1>
<p class="muted">Manage your ongoing and past journeys. <a class="btn" href="/newtrip">+ Plan New Trip</a></p>
{{if .Empty}}
<div class="card"><h3>No trips yet</h3><p class="muted">Start planning your first adventure!</p>
<a class="btn" href="/newtrip">Create Your First Trip</a></div>
{{end}}
{{if .Ongoing}}<h3>Happening Now</h3><div class="grid">{{range .Ongoing}}{{template "tripcard" .}}{{end}}</div>{{end}}
{{if .Upcoming}}<h3>Coming Up</h3><div class="grid">{{range .Upcoming}}{{template "tripcard" .}}{{end}}</div>{{end}}
{{if .Completed}}<h3>Past Adventures</h3><div class="grid">{{range .Completed}}{{template "tripcard" .}}{{end}}</div>{{end}}
{{end}}
{{define "tripcard"}}
<div class="card">
{{if .CoverImage}}<img src="{{.CoverImage}}" alt="" style="width:100%;height:120px;object-fit:cover;border-radius:8px">
{{else}}<div style="width:100%;height:120px;border-radius:8px;background:linear-gradient(135deg,#6366f1,#8b5cf6)"></div>{{end}}
<span class="badge {{.Status}}">{{.Status}}</span>
<h3 style="margin:6px 0"><a href="/trips/{{.ID}}/view">{{.Title}}</a></h3>
<p class="muted">{{.StartDate}} → {{.EndDate}}</p>
{{if .Description}}<p class="muted">{{.Description}}</p>{{end}}
<p><a href="/trips/{{.ID}}/itinerary">Edit Itinerary →</a></p>
</div>
{{end}}`

const newTripTmpl = `{{define "content"}}
<h1>Start a New Adventure</h1>
<p class="muted">Basic details to get your journey started.</p>
<div class="card" style="max-width:560px">
<form method="post" action="/newtrip" enctype="multipart/form-data">
<label>Trip Title</label>
<input name="title" required placeholder="e.g., Summer in Italy 2026" value="{{.Title}}">
<label>Description</label>
<textarea name="description" rows="2"></textarea>
<label>Start Date</label><input type="date" name="start_date" required value="{{.StartDate}}">
<label>End Date</label><input type="date" name="end_date" required value="{{.EndDate}}">
<label>Cover Image (optional)</label><input type="file" name="cover" accept="image/*">
<label><input type="checkbox" name="is_public" style="width:auto"> Make this trip public</label>
<p><button type="submit">Continue to Itinerary →</button></p>
</form>
</div>
{{end}}`

const builderTmpl = `{{define "content"}}
<h1>Build Your Itinerary</h1>
<p class="muted">{{.Trip.Title}} · {{.Trip.StartDate}} → {{.Trip.EndDate}} · Running estimate <b>{{money .Total}}</b></p>
{{range .Warnings}}<div class="warn">⚠️ {{.}}</div>{{end}}
{{range .Stops}}
<div class="card">
<b>#{{.Index}}</b> {{if .CityName}}— {{.CityName}}{{end}}
<span class="muted">({{.State}})</span>
{{if .Removable}}
<form method="post" action="/trips/{{.Stop.TripID}}/stops/{{.LocalID}}/remove" style="display:inline;float:right">
<button class="danger" type="submit">Remove</button>
</form>
{{end}}
<label>City</label>
<select data-stop="{{.LocalID}}" data-field="city_id">
<option value="">— choose a city —</option>
{{$stop := .Stop}}
{{range $.Cities}}<option value="{{.ID}}" {{if eq .ID $stop.CityID}}selected{{end}}>{{.CityName}}, {{.Country}}</option>{{end}}
</select>
<label>Start Date</label>
<input type="date" value="{{.Stop.StartDate}}" data-stop="{{.LocalID}}" data-field="start_date">
<label>End Date</label>
<input type="date" value="{{.Stop.EndDate}}" data-stop="{{.LocalID}}" data-field="end_date">
{{if .Stop.EstimatedBudget}}
<p class="muted">Transport {{money .Stop.EstimatedBudget.TransportCost}} · Stay {{money .Stop.EstimatedBudget.StayCost}} ·
Food {{money .Stop.EstimatedBudget.FoodCost}} · Activities {{money .Stop.EstimatedBudget.ActivityCost}} ·
<b>Total {{money .Stop.EstimatedBudget.TotalCost}}</b></p>
{{end}}
<p>{{len .Stop.Activities}} activities selected ·
<form method="post" action="/trips/{{.Stop.TripID}}/stops/{{.LocalID}}/activities" style="display:inline">
<button class="quiet" type="submit">Choose Activities</button>
</form>
</p>
</div>
{{end}}
<form method="post" action="/trips/{{.Trip.ID}}/stops" style="display:inline">
<button class="quiet" type="submit">+ Add Another Stop</button>
</form>
<form method="post" action="/trips/{{.Trip.ID}}/save" style="display:inline">
<button type="submit">Save Trip</button>
</form>
<a class="btn quiet" href="/trips">Cancel</a>
<script>
document.querySelectorAll('[data-stop]').forEach(function(el){
  el.addEventListener('change',function(){
    var fd=new FormData();
    fd.append('field',el.dataset.field);
    fd.append('value',el.value);
    fetch('/trips/{{.Trip.ID}}/stops/'+el.dataset.stop+'/update',{method:'POST',body:fd});
  });
});
</script>
{{end}}`

const recommendTmpl = `{{define "content"}}
<h1>Recommended Activities in {{.City.CityName}}</h1>
<p class="muted">{{.City.Country}} · Select activities to build your itinerary</p>
{{if .Days}}<p class="muted">📅 {{.StartDate}} → {{.EndDate}} · {{.Days}} day{{if ne .Days 1}}s{{end}}</p>{{end}}
{{if .Estimate}}
<div class="card">
<span class="stat">Transport<b>{{money .Estimate.TransportCost}}</b></span>
<span class="stat">Accommodation<b>{{money .Estimate.StayCost}}</b></span>
<span class="stat">Food<b>{{money .Estimate.FoodCost}}</b></span>
<span class="stat">Activities<b>{{money .Estimate.ActivityCost}}</b></span>
<span class="stat">Total Estimate<b>{{money .Estimate.TotalCost}}</b></span>
</div>
{{end}}
<form method="get" action="{{.PickURL}}">
<input type="hidden" name="pick" value="{{.Token}}">
<select name="category">
<option value="">All Categories</option>
{{$c := .Category}}
{{range $v := slicecats}}<option value="{{$v}}" {{if eq $v $c}}selected{{end}}>{{$v}}</option>{{end}}
</select>
<select name="budget">
<option value="">Any Budget</option>
{{$b := .BudgetTier}}
{{range $v := slicetiers}}<option value="{{$v}}" {{if eq $v $b}}selected{{end}}>{{$v}}</option>{{end}}
</select>
<button class="quiet" type="submit">Filter</button>
</form>
<div class="grid" style="margin-top:16px">
{{range .Activities}}
<div class="card">
<b>{{.Name}}</b> <span class="muted">{{.Category}}</span>
{{if .Description}}<p class="muted">{{.Description}}</p>{{end}}
<p>{{money .AvgCost}}</p>
<form method="post" action="/recommendations/toggle">
<input type="hidden" name="pick" value="{{$.Token}}">
<input type="hidden" name="city_id" value="{{$.City.ID}}">
<input type="hidden" name="category" value="{{$.Category}}">
<input type="hidden" name="budget" value="{{$.BudgetTier}}">
<input type="hidden" name="activity_id" value="{{.ID}}">
<input type="hidden" name="cost" value="{{.AvgCost}}">
<button type="submit" {{if .Selected}}class="danger"{{end}}>{{if .Selected}}✓ Remove{{else}}+ Select{{end}}</button>
</form>
</div>
{{end}}
</div>
{{if .Orphans}}
<p class="muted">Still selected (not in current filter):
{{range .Orphans}}<code>{{.}}</code> {{end}}</p>
{{end}}
<div class="card">
<b>{{.SelectedCount}}</b> selected · Total <b>{{money .SelectedTotal}}</b>
<form method="post" action="/recommendations/confirm" style="display:inline">
<input type="hidden" name="pick" value="{{.Token}}">
<button type="submit">{{if .HasReturn}}Add to Itinerary{{else}}Done{{end}}</button>
</form>
</div>
{{end}}`

const scheduleTmpl = `{{define "content"}}
<p><a href="/trips">← Back to Trips</a></p>
<h1>{{.Trip.Title}} <span class="badge {{.Status}}">{{.Status}}</span></h1>
<p class="muted">{{.Trip.StartDate}} → {{.Trip.EndDate}} · {{.DayCount}} days ·
<a href="/trips/{{.Trip.ID}}/itinerary">Edit Itinerary</a> ·
<a href="/trips/{{.Trip.ID}}/pdf">Download PDF</a>
{{if .ShareSlug}} · <a href="/shared/{{.ShareSlug}}">Public link</a>{{end}}</p>
<p>
<form method="post" action="/trips/{{.Trip.ID}}/share" style="display:inline">
<button class="quiet" type="submit">Share publicly</button>
</form>
<form method="post" action="/trips/{{.Trip.ID}}/delete" style="display:inline" onsubmit="return confirm('Delete this trip?')">
<button class="danger" type="submit">Delete Trip</button>
</form>
</p>
{{if .Budget}}
<div class="card">
<span class="stat">Total Budget<b>{{money .Budget.TotalCost}}</b></span>
<span class="stat">Spent<b>{{money .Spent}}</b></span>
<span class="stat">Left<b>{{money .Remaining}}</b></span>
<span class="stat">Avg / Day<b>{{money .PerDay}}</b></span>
<div style="background:#e5e7eb;border-radius:6px;height:10px;max-width:420px">
<div style="background:#4f46e5;border-radius:6px;height:10px;width:{{.Percent}}%"></div>
</div>
</div>
{{end}}
<h3>Daily Itinerary &amp; Expenses</h3>
{{range .Days}}
<div class="card">
<b>Day {{.DayNum}}</b> <span class="muted">— {{.Date}} ({{.Location}})</span>
{{range .Items}}
<p>{{.Time}} · {{.Title}} <span style="float:right">{{if gt .Cost 0.0}}-{{money .Cost}}{{else}}Free{{end}}</span></p>
{{end}}
</div>
{{else}}
<p class="muted">No schedule yet — build the itinerary first.</p>
{{end}}
{{end}}`

const calendarTmpl = `{{define "content"}}
<h1>Trip Calendar</h1>
<p class="muted">Visual timeline of your upcoming journeys.</p>
<p>
<a class="btn quiet" href="/calendar?{{.PrevQuery}}">← Previous</a>
<b style="margin:0 16px">{{.MonthName}} {{.Month.Year}}</b>
<a class="btn quiet" href="/calendar?{{.NextQuery}}">Next →</a>
</p>
<table>
<tr><th>Sun</th><th>Mon</th><th>Tue</th><th>Wed</th><th>Thu</th><th>Fri</th><th>Sat</th></tr>
{{range .Weeks}}
<tr>
{{range .}}
<td class="cal-day {{if .Today}}cal-today{{end}}">
{{if .Day}}{{.Day}}{{range .Trips}}<span class="ev">{{.Title}}</span>{{end}}{{end}}
</td>
{{end}}
</tr>
{{end}}
</table>
<p class="muted">{{if .TripCount}}Showing {{.TripCount}} trip{{if ne .TripCount 1}}s{{end}}{{else}}No trips scheduled yet. Create your first trip to see it here!{{end}}</p>
{{end}}`

const profileTmpl = `{{define "content"}}
<h1>{{.User.FirstName}} {{.User.LastName}}</h1>
<p class="muted">{{.User.City}}{{if and .User.City .User.Country}}, {{end}}{{.User.Country}}</p>
<div class="card" style="max-width:560px">
<form method="post" action="/profile">
<label>First Name</label><input name="first_name" value="{{.User.FirstName}}">
<label>Last Name</label><input name="last_name" value="{{.User.LastName}}">
<label>Phone</label><input name="phone_number" value="{{.User.Phone}}">
<label>City</label><input name="city" value="{{.User.City}}">
<label>Country</label><input name="country" value="{{.User.Country}}">
<label>About Me</label><textarea name="additional_info" rows="3">{{.User.AdditionalInfo}}</textarea>
<p><button type="submit">Save Changes</button></p>
</form>
<p class="muted">Signed in as {{.User.Email}}</p>
</div>
{{end}}`

const activitiesTmpl = `{{define "content"}}
<h1>Discover Activities</h1>
<p class="muted">Find top-rated things to do in your destination.</p>
<form method="get" action="/activities">
<input name="search" placeholder="Search by city or activity..." value="{{.Search}}" style="max-width:300px;display:inline-block">
<select name="category" style="width:auto">
<option value="">All Categories</option>
{{$c := .Category}}
{{range $v := slicecats}}<option value="{{$v}}" {{if eq $v $c}}selected{{end}}>{{$v}}</option>{{end}}
</select>
<button class="quiet" type="submit">Search</button>
</form>
<div class="grid" style="margin-top:16px">
{{range .Results}}
<div class="card">
<b>{{.Name}}</b> <span class="muted">{{.Category}}</span>
{{if .Description}}<p class="muted">{{.Description}}</p>{{end}}
<p>{{money .AvgCost}}</p>
</div>
{{else}}
<p class="muted">No activities match your search.</p>
{{end}}
</div>
{{end}}`

const sharedTmpl = `{{define "content"}}
<h1>{{.Shared.Trip.Title}}</h1>
<p class="muted">{{.Shared.Trip.StartDate}} → {{.Shared.Trip.EndDate}} · {{.Days}} days ·
Estimated spend {{money .Spend}} ·
<a href="/shared/{{.Shared.Slug}}/qr">QR code</a></p>
{{if .Shared.Trip.Description}}<p>{{.Shared.Trip.Description}}</p>{{end}}
{{range .Shared.Stops}}
<div class="card">
<b>Stop {{.StopOrder}}</b> <span class="muted">{{.StartDate}} → {{.EndDate}}</span>
<p class="muted">{{len .Activities}} activities
{{if .EstimatedBudget}} · est. {{money .EstimatedBudget.TotalCost}}{{end}}</p>
</div>
{{end}}
{{end}}`

const notFoundTmpl = `{{define "content"}}
<h1>Page not found</h1>
<p class="muted">Nothing lives at <code>{{.Path}}</code>.</p>
<p><a class="btn" href="/trips">Back to My Trips</a></p>
{{end}}`

const errorTmpl = `{{define "content"}}
<h1>Something went wrong</h1>
<p class="muted">The problem is on our side or the backend's — your data is safe. Try again in a moment.</p>
<p><a class="btn" href="/trips">Back to My Trips</a></p>
{{end}}`
